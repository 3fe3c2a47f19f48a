// Package core provides the foundational domain types and contracts used by
// videodigest. It defines the core abstractions for:
//
//   - Steps (three-phase units of pipeline work: Prepare, Execute, Finalize)
//   - SharedState (the mutable key/value blackboard threaded through a run)
//   - WorkItems / WorkResults (fan-out units and their per-topic outcomes)
//   - The pipeline error taxonomy (missing input, worker failure, aborts)
//
// The package intentionally keeps implementation concerns (sequencing,
// fan-out scheduling, generation clients, rendering) out of scope, exposing
// small interfaces and value types so the surrounding packages can be wired
// and replaced independently.
package core
