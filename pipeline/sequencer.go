package pipeline

import (
	"context"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/logging"
)

// Sequencer runs an ordered list of steps against one SharedState.
//
// For every step the phases run strictly in Prepare, Execute, Finalize order;
// Execute is never called when Prepare failed, nor Finalize when Execute
// failed. The first phase error halts the sequence: the error is written to
// the state's error key (wrapped with the step and phase that produced it)
// and the state is returned as-is so the caller can inspect partial output.
//
// Steps share the same state and build upon each other's committed results.
type Sequencer struct {
	steps  []core.Step
	logger logging.Logger
}

// SequencerOptions holds optional overrides for NewSequencer.
type SequencerOptions struct {
	// Logger receives per-step progress; defaults to NoOpLogger.
	Logger logging.Logger
}

// NewSequencer creates a sequencer over the given steps in execution order.
func NewSequencer(steps []core.Step, optFns ...func(o *SequencerOptions)) *Sequencer {
	opts := SequencerOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Sequencer{steps: steps, logger: opts.Logger}
}

// Steps returns a copy of the configured step list for safe iteration.
func (s *Sequencer) Steps() []core.Step {
	out := make([]core.Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Run executes the steps in order against state. It always returns the state,
// complete or partial; callers inspect state.Err() to distinguish. The
// returned error is the same one written to the error key, or nil.
func (s *Sequencer) Run(ctx context.Context, state *core.SharedState) (*core.SharedState, error) {
	for _, step := range s.steps {
		// A collaborator may have aborted the run by writing the error key
		// directly; downstream steps must not act on a poisoned state.
		if err := state.Err(); err != nil {
			s.logger.Warn("pipeline already aborted, skipping remaining steps", "step", step.Name())
			return state, err
		}

		if err := s.runStep(ctx, step, state); err != nil {
			state.SetErr(err)
			s.logger.Error("pipeline halted", "step", step.Name(), "error", err)
			return state, err
		}

		s.logger.Debug("step completed", "step", step.Name())
	}

	return state, nil
}

// runStep drives a single step through its three phases, wrapping any phase
// error with the step name and phase label.
func (s *Sequencer) runStep(ctx context.Context, step core.Step, state *core.SharedState) error {
	if err := step.Prepare(ctx, state); err != nil {
		return &core.SequenceAbortedError{Step: step.Name(), Phase: "prepare", Err: err}
	}
	if err := step.Execute(ctx, state); err != nil {
		return &core.SequenceAbortedError{Step: step.Name(), Phase: "execute", Err: err}
	}
	if err := step.Finalize(ctx, state); err != nil {
		return &core.SequenceAbortedError{Step: step.Name(), Phase: "finalize", Err: err}
	}
	return nil
}
