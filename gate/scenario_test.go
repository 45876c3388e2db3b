package gate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
name: rush-hour
waiting: [5, 2, 8, 1]
competing: [1, 3, 2, 5]
priority_ratio: 2.0
`)

	sc, err := LoadScenario(path)
	assert.NoError(t, err)
	assert.Equal(t, "rush-hour", sc.Name)
	assert.Equal(t, []float64{5, 2, 8, 1}, sc.Waiting)
	assert.Equal(t, []float64{1, 3, 2, 5}, sc.Competing)
	assert.NoError(t, sc.Validate())

	p := sc.Params()
	assert.Equal(t, NewParams(3, 2, 2.0), p)
}

func TestLoadScenario_DefaultsWhenNoOverrides(t *testing.T) {
	path := writeScenario(t, `
name: quiet-night
waiting: [1]
competing: [0]
`)

	sc, err := LoadScenario(path)
	assert.NoError(t, err)
	assert.Equal(t, DefaultParams(), sc.Params())
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, `
name: typo
waiting: [1]
competing: [1]
min_waiting_treshold: 5
`)

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestScenarioValidate(t *testing.T) {
	bad := 0.0
	tests := []struct {
		name string
		sc   Scenario
		ok   bool
	}{
		{"valid", Scenario{Name: "a", Waiting: []float64{1}, Competing: []float64{2}}, true},
		{"no lanes", Scenario{Name: "b"}, false},
		{"length mismatch", Scenario{Name: "c", Waiting: []float64{1, 2}, Competing: []float64{1}}, false},
		{"non-positive ratio", Scenario{Name: "d", Waiting: []float64{1}, Competing: []float64{1}, PriorityRatio: &bad}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sc.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
