package store

import "fmt"

// ErrNotFound is returned when a page for the given run / name pair does not
// exist in the underlying store.
var ErrNotFound = fmt.Errorf("report page not found")

// ReportStore persists rendered report pages keyed by run id and page name.
type ReportStore interface {
	// Save stores (or overwrites) the page bytes for the given run and name.
	Save(runID, name string, data []byte) error

	// Get returns the stored page bytes or ErrNotFound.
	Get(runID, name string) ([]byte, error)

	// List returns the page names stored for the run.
	List(runID string) ([]string, error)

	// Delete removes the page if present or returns ErrNotFound.
	Delete(runID, name string) error
}
