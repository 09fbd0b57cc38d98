// Package orchestrator drives the form -> submitting -> report session flow.
package orchestrator

import "fmt"

// ErrSubmissionPending indicates a submit was attempted while an analysis
// call was already in flight. The attempt is a no-op, never a queued or
// parallel call.
type ErrSubmissionPending struct{}

func (e *ErrSubmissionPending) Error() string {
	return "a submission is already in progress"
}

// ErrWrongState indicates an operation that is not valid in the session's
// current state, such as exporting outside the report view.
type ErrWrongState struct {
	Op    string
	State State
}

func (e *ErrWrongState) Error() string {
	return fmt.Sprintf("%s is not allowed in state %s", e.Op, e.State)
}
