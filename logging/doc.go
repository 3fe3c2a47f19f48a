// Package logging provides a minimal logging interface and adapters for
// videodigest.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the pipeline and its steps use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - PipelineLogger with run/step scoped helpers for steps, fan-out and
//     generation calls
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
