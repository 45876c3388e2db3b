package gate

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates statistics from a BatchResult.
type Summary struct {
	Lanes         int
	GreenCount    int
	RedCount      int
	GreenShare    float64 // GreenCount / Lanes
	MeanWaiting   float64
	MeanCompeting float64
	MeanRatio     float64
	MaxRatio      float64
	BusiestLane   int // index of the lane with the highest ratio
}

// Summarize computes aggregate statistics from a BatchResult.
// Safe for nil or empty results (returns zero-value fields).
func Summarize(r *BatchResult) Summary {
	var s Summary
	if r == nil || len(r.Decisions) == 0 {
		return s
	}

	s.Lanes = len(r.Decisions)
	s.GreenCount = r.GreenCount
	s.RedCount = r.RedCount
	s.GreenShare = float64(r.GreenCount) / float64(s.Lanes)

	s.MeanWaiting = stat.Mean(r.Waiting, nil)
	s.MeanCompeting = stat.Mean(r.Competing, nil)
	s.MeanRatio = stat.Mean(r.Ratios, nil)
	s.BusiestLane = floats.MaxIdx(r.Ratios)
	s.MaxRatio = r.Ratios[s.BusiestLane]

	return s
}
