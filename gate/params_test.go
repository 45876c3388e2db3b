package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParams_FieldEquivalence(t *testing.T) {
	got := NewParams(4, 1, 2.0)
	want := Params{
		MinWaitingThreshold:   4,
		MaxCompetingThreshold: 1,
		PriorityRatio:         2.0,
	}
	assert.Equal(t, want, got)
}

func TestDefaultParams(t *testing.T) {
	got := DefaultParams()
	want := Params{
		MinWaitingThreshold:   3,
		MaxCompetingThreshold: 2,
		PriorityRatio:         1.5,
	}
	assert.Equal(t, want, got)
}
