// Package orchestrator provides the fan-out/fan-in step of the pipeline: it
// partitions one step's workload by topic, executes one WorkerTask per topic
// through a bounded concurrent pool, and deterministically merges the partial
// results back into the shared state.
//
// Execution model:
//   - Prepare validates the topic list and transcript (MissingInput on
//     absence) and de-duplicates topics preserving first occurrence
//   - Execute submits every work item to the pool; submission blocks when the
//     pool is saturated, and a full barrier holds until every item has a
//     WorkResult. A single worker's error or runtime fault never cancels,
//     blocks or corrupts its siblings
//   - Finalize merges successful results into the per-topic content mappings
//     in original topic order, records failures per topic, and reports
//     AllWorkFailed only when no item succeeded.
//
// Workers never touch SharedState; all durable mutation happens in the
// single-threaded Finalize phase, so the pool needs no locking around state.
package orchestrator
