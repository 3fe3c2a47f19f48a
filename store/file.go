package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore is a ReportStore writing pages to the local filesystem, one
// directory per run under a fixed root. Page names map directly to file
// names, so a rendered run can be opened in a browser straight from disk.
//
// Page names are restricted to plain file names; anything containing a path
// separator is rejected to keep writes inside the run directory.
type FileStore struct {
	root string
}

// NewFileStore creates a store rooted at the given directory, creating it if
// necessary.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create report root %s: %w", root, err)
	}
	return &FileStore{root: root}, nil
}

// Root returns the root directory pages are written under.
func (s *FileStore) Root() string { return s.root }

func (s *FileStore) path(runID, name string) (string, error) {
	if runID == "" || runID != filepath.Base(runID) {
		return "", fmt.Errorf("invalid run id %q", runID)
	}
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid page name %q", name)
	}
	return filepath.Join(s.root, runID, name), nil
}

// Save implements ReportStore.
func (s *FileStore) Save(runID, name string, data []byte) error {
	path, err := s.path(runID, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create run directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write page %s: %w", name, err)
	}
	return nil
}

// Get implements ReportStore.
func (s *FileStore) Get(runID, name string) ([]byte, error) {
	path, err := s.path(runID, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", name, err)
	}
	return data, nil
}

// List implements ReportStore. A run that never saved a page lists empty.
func (s *FileStore) List(runID string) ([]string, error) {
	if runID == "" || runID != filepath.Base(runID) {
		return nil, fmt.Errorf("invalid run id %q", runID)
	}
	entries, err := os.ReadDir(filepath.Join(s.root, runID))
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list run %s: %w", runID, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Delete implements ReportStore.
func (s *FileStore) Delete(runID, name string) error {
	path, err := s.path(runID, name)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete page %s: %w", name, err)
	}
	return nil
}
