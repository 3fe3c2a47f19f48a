// Package pipeline contains the step lifecycle plumbing and the Sequencer
// that drives an ordered list of steps against one SharedState. The package
// focuses on three concerns:
//
//  1. Base step identity + embedding support (BaseStep)
//  2. Strict three-phase sequencing with first-failure halt (Sequencer)
//  3. Lightweight function-backed steps for glue stages (StepFunc)
//
// Execution model:
//   - A step's phases receive the run's *core.SharedState by reference
//   - Prepare and Execute never write state; Finalize commits staged results
//   - The sequencer writes the halting error under core.KeyError and returns
//     the state as-is, so callers always get whatever data accumulated before
//     the failure.
//
// Fan-out coordination lives in the orchestrator package to keep this one
// free of concurrency concerns.
package pipeline
