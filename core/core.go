package core

import (
	"context"

	"github.com/google/uuid"
)

// Step is the atomic unit of pipeline work. Every step runs a fixed
// three-phase lifecycle against the run's SharedState:
//
//   - Prepare validates inputs and reads from state; it must not mutate it
//   - Execute performs the (possibly slow or remote) work, staging results in
//     step-local memory; it must not write SharedState directly
//   - Finalize commits the staged results into SharedState
//
// The phase separation is what makes concurrently running Execute phases safe
// without locking SharedState: all durable mutation is funneled through the
// single-threaded Finalize phase.
//
// Implementations should be stateless across runs; a step's only identity is
// its position in the sequence.
type Step interface {
	Name() string
	Prepare(ctx context.Context, state *SharedState) error
	Execute(ctx context.Context, state *SharedState) error
	Finalize(ctx context.Context, state *SharedState) error
}

// NewID returns a new unique identifier for runs and stored artifacts.
func NewID() string { return uuid.NewString() }
