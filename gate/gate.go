package gate

// EvaluatePriority decides, per lane, whether the local lane should switch
// to GREEN. waiting[i] and competing[i] are vehicle counts for lane i at one
// snapshot; the returned slice has the same length and index order.
//
// A lane goes GREEN when any of these holds:
//  1. waiting >= MinWaitingThreshold AND competing <= MaxCompetingThreshold
//  2. waiting/competing >= PriorityRatio (strong demand imbalance)
//  3. competing == 0 AND waiting > 0 (no conflicting traffic at all)
//
// Lanes are independent; the function is pure and deterministic. The only
// error condition is a length mismatch between the two slices, reported as
// *ShapeMismatchError before any lane is evaluated.
func EvaluatePriority(waiting, competing []float64, p Params) ([]bool, error) {
	if len(waiting) != len(competing) {
		return nil, NewShapeMismatchError(len(waiting), len(competing))
	}

	decisions := make([]bool, len(waiting))
	for i := range waiting {
		decisions[i] = laneDecision(waiting[i], competing[i], p)
	}
	return decisions, nil
}

// laneDecision applies the priority rule to a single lane.
func laneDecision(waiting, competing float64, p Params) bool {
	ratio := waiting / safeCompeting(competing)

	byThreshold := waiting >= p.MinWaitingThreshold && competing <= p.MaxCompetingThreshold
	byRatio := ratio >= p.PriorityRatio
	// Zero competing traffic with any demand always wins, even below the
	// waiting threshold. Overlaps with byThreshold on purpose.
	byEmptyCross := competing == 0 && waiting > 0

	return byThreshold || byRatio || byEmptyCross
}

// safeCompeting substitutes 1 for a zero denominator so the ratio stays
// finite. Only the ratio uses this value; the threshold and empty-cross
// checks see the real count.
func safeCompeting(competing float64) float64 {
	if competing == 0 {
		return 1
	}
	return competing
}
