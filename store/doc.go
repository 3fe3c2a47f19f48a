// Package store contains concrete implementations of the ReportStore used by
// the report-rendering step to persist rendered pages per run.
//
// Implementation packages like this one (in-memory, filesystem, object
// stores, databases) provide storage backends that can be swapped without
// touching calling code. Callers should depend on the ReportStore interface
// rather than concrete types so they can substitute alternative persistence
// layers in tests or production.
package store
