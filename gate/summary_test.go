package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	result, err := EvaluateBatch([]float64{5, 2, 8, 1}, []float64{1, 3, 2, 5}, DefaultParams())
	assert.NoError(t, err)

	s := Summarize(result)

	assert.Equal(t, 4, s.Lanes)
	assert.Equal(t, 2, s.GreenCount)
	assert.Equal(t, 2, s.RedCount)
	assert.InDelta(t, 0.5, s.GreenShare, 1e-12)
	assert.InDelta(t, 4.0, s.MeanWaiting, 1e-12)
	assert.InDelta(t, 2.75, s.MeanCompeting, 1e-12)
	// ratios: 5, 2/3, 4, 0.2
	assert.InDelta(t, (5+2.0/3.0+4+0.2)/4, s.MeanRatio, 1e-12)
	assert.Equal(t, 0, s.BusiestLane)
	assert.InDelta(t, 5.0, s.MaxRatio, 1e-12)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	result, err := EvaluateBatch(nil, nil, DefaultParams())
	assert.NoError(t, err)
	assert.Equal(t, Summary{}, Summarize(result))
}
