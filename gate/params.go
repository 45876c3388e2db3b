package gate

// Default decision thresholds, applied when a field is not overridden.
const (
	DefaultMinWaitingThreshold   = 3.0
	DefaultMaxCompetingThreshold = 2.0
	DefaultPriorityRatio         = 1.5
)

// Params groups the tunable thresholds of the priority rule.
// A Params value is immutable per call; the evaluator never modifies it.
type Params struct {
	MinWaitingThreshold   float64 // minimum waiting vehicles before the lane is considered (default 3)
	MaxCompetingThreshold float64 // maximum competing traffic allowed for a threshold switch (default 2)
	PriorityRatio         float64 // waiting/competing ratio that independently forces GREEN (default 1.5)
}

// NewParams creates a Params with the given thresholds.
func NewParams(minWaiting, maxCompeting, priorityRatio float64) Params {
	return Params{
		MinWaitingThreshold:   minWaiting,
		MaxCompetingThreshold: maxCompeting,
		PriorityRatio:         priorityRatio,
	}
}

// DefaultParams returns the standard thresholds (3, 2, 1.5).
func DefaultParams() Params {
	return NewParams(DefaultMinWaitingThreshold, DefaultMaxCompetingThreshold, DefaultPriorityRatio)
}
