package gate

import "fmt"

// ShapeMismatchError reports that the waiting and competing slices passed to
// the evaluator had different lengths. It is the only error kind the core
// defines; it is returned before any computation, never as a partial result.
type ShapeMismatchError struct {
	WaitingLen   int
	CompetingLen int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("waiting and competing must have the same length: got %d and %d",
		e.WaitingLen, e.CompetingLen)
}

// NewShapeMismatchError creates a ShapeMismatchError from the two observed lengths.
func NewShapeMismatchError(waitingLen, competingLen int) *ShapeMismatchError {
	return &ShapeMismatchError{WaitingLen: waitingLen, CompetingLen: competingLen}
}
