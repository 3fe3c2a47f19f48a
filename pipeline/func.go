package pipeline

import (
	"context"

	"github.com/hupe1980/videodigest/core"
)

// PhaseFunc is a single step phase implemented as a plain function.
type PhaseFunc func(ctx context.Context, state *core.SharedState) error

// FuncStep adapts up to three plain functions into a core.Step. Nil phases
// are no-ops. Useful for glue stages and tests where a full step type would
// be noise.
type FuncStep struct {
	BaseStep
	prepare  PhaseFunc
	execute  PhaseFunc
	finalize PhaseFunc
}

// NewFuncStep constructs a FuncStep with the given name and phases.
func NewFuncStep(name string, prepare, execute, finalize PhaseFunc) *FuncStep {
	return &FuncStep{BaseStep: NewBaseStep(name), prepare: prepare, execute: execute, finalize: finalize}
}

// Prepare implements core.Step.
func (f *FuncStep) Prepare(ctx context.Context, state *core.SharedState) error {
	if f.prepare == nil {
		return nil
	}
	return f.prepare(ctx, state)
}

// Execute implements core.Step.
func (f *FuncStep) Execute(ctx context.Context, state *core.SharedState) error {
	if f.execute == nil {
		return nil
	}
	return f.execute(ctx, state)
}

// Finalize implements core.Step.
func (f *FuncStep) Finalize(ctx context.Context, state *core.SharedState) error {
	if f.finalize == nil {
		return nil
	}
	return f.finalize(ctx, state)
}
