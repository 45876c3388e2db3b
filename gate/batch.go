package gate

// BatchResult bundles the decisions for one evaluation snapshot with the
// inputs that produced them and the derived per-lane ratios.
// GreenCount + RedCount always equals the number of lanes.
type BatchResult struct {
	Decisions  []bool    // per-lane GREEN (true) / RED (false)
	Waiting    []float64 // input waiting counts, passed through unmodified
	Competing  []float64 // input competing counts, passed through unmodified
	Ratios     []float64 // waiting/competing per lane (denominator 1 when competing is 0)
	GreenCount int
	RedCount   int
}

// EvaluateBatch runs EvaluatePriority and augments the decisions with
// per-lane ratios and green/red tallies. Validation is delegated to the
// evaluator; a shape mismatch propagates unchanged.
func EvaluateBatch(waiting, competing []float64, p Params) (*BatchResult, error) {
	decisions, err := EvaluatePriority(waiting, competing, p)
	if err != nil {
		return nil, err
	}

	ratios := make([]float64, len(waiting))
	for i := range waiting {
		ratios[i] = waiting[i] / safeCompeting(competing[i])
	}

	green := 0
	for _, d := range decisions {
		if d {
			green++
		}
	}

	return &BatchResult{
		Decisions:  decisions,
		Waiting:    waiting,
		Competing:  competing,
		Ratios:     ratios,
		GreenCount: green,
		RedCount:   len(decisions) - green,
	}, nil
}
