package core

import (
	"fmt"
	"strings"
)

// MissingInputError signals that a required SharedState key was absent or
// empty when a step's Prepare phase ran.
type MissingInputError struct {
	Key string
}

// Error implements the error interface.
func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required input %q", e.Key)
}

// NewMissingInputError constructs a MissingInputError for the given key.
func NewMissingInputError(key string) *MissingInputError {
	return &MissingInputError{Key: key}
}

// WorkerFailureError records the failure of a single work item's generation
// calls. It is recovered locally by the orchestrator and never halts the
// fan-out on its own.
type WorkerFailureError struct {
	Topic  string
	Detail string
}

// Error implements the error interface.
func (e *WorkerFailureError) Error() string {
	return fmt.Sprintf("work item %q failed: %s", e.Topic, e.Detail)
}

// AllWorkFailedError signals that every submitted work item failed, which is
// fatal for the orchestrator step.
type AllWorkFailedError struct {
	Failures map[string]string // topic -> failure detail
}

// Error implements the error interface.
func (e *AllWorkFailedError) Error() string {
	topics := make([]string, 0, len(e.Failures))
	for t := range e.Failures {
		topics = append(topics, t)
	}
	return fmt.Sprintf("all %d work items failed (topics: %s)", len(e.Failures), strings.Join(topics, ", "))
}

// SequenceAbortedError wraps the error that halted the sequencer, naming the
// step and phase where it occurred. Later steps never run once the sequence
// aborts.
type SequenceAbortedError struct {
	Step  string
	Phase string
	Err   error
}

// Error implements the error interface.
func (e *SequenceAbortedError) Error() string {
	return fmt.Sprintf("pipeline aborted at step %q (%s): %v", e.Step, e.Phase, e.Err)
}

// Unwrap exposes the underlying phase error for errors.Is / errors.As.
func (e *SequenceAbortedError) Unwrap() error { return e.Err }
