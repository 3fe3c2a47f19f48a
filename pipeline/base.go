package pipeline

import (
	"context"
	"fmt"

	"github.com/hupe1980/videodigest/core"
)

// BaseStep bundles shared identity helpers for step implementations. Embed it
// in concrete steps and supply the phase methods you need; the embedded
// defaults make every phase a no-op so simple steps only override what they
// use.
type BaseStep struct {
	name        string
	description string
}

// NewBaseStep constructs a BaseStep with a generated description
// (customizable via SetDescription).
func NewBaseStep(name string) BaseStep {
	return BaseStep{name: name, description: fmt.Sprintf("Step %s", name)}
}

// Name returns the human-readable name for this step.
func (b *BaseStep) Name() string { return b.name }

// Description returns a detailed description of this step's purpose.
func (b *BaseStep) Description() string { return b.description }

// SetDescription updates the step's description.
func (b *BaseStep) SetDescription(desc string) { b.description = desc }

// Prepare is a no-op default; override to validate inputs.
func (b *BaseStep) Prepare(context.Context, *core.SharedState) error { return nil }

// Execute is a no-op default; override to perform the step's work.
func (b *BaseStep) Execute(context.Context, *core.SharedState) error { return nil }

// Finalize is a no-op default; override to commit staged results.
func (b *BaseStep) Finalize(context.Context, *core.SharedState) error { return nil }
