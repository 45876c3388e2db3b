package gate

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named lane snapshot loaded from YAML, with optional
// threshold overrides. Absent overrides fall back to DefaultParams.
type Scenario struct {
	Name      string    `yaml:"name"`
	Waiting   []float64 `yaml:"waiting"`
	Competing []float64 `yaml:"competing"`

	MinWaitingThreshold   *float64 `yaml:"min_waiting_threshold,omitempty"`
	MaxCompetingThreshold *float64 `yaml:"max_competing_threshold,omitempty"`
	PriorityRatio         *float64 `yaml:"priority_ratio,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected to catch typos in threshold names.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks that the scenario describes at least one lane and that
// any overrides are usable by the evaluator.
func (s *Scenario) Validate() error {
	if len(s.Waiting) == 0 {
		return fmt.Errorf("scenario %q has no lanes", s.Name)
	}
	if len(s.Waiting) != len(s.Competing) {
		return NewShapeMismatchError(len(s.Waiting), len(s.Competing))
	}
	if s.PriorityRatio != nil && *s.PriorityRatio <= 0 {
		return fmt.Errorf("priority_ratio must be > 0, got %v", *s.PriorityRatio)
	}
	return nil
}

// Params resolves the scenario's overrides against the defaults.
func (s *Scenario) Params() Params {
	p := DefaultParams()
	if s.MinWaitingThreshold != nil {
		p.MinWaitingThreshold = *s.MinWaitingThreshold
	}
	if s.MaxCompetingThreshold != nil {
		p.MaxCompetingThreshold = *s.MaxCompetingThreshold
	}
	if s.PriorityRatio != nil {
		p.PriorityRatio = *s.PriorityRatio
	}
	return p
}
