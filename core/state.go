package core

import (
	"sync"
	"time"
)

// SharedState is the mutable key/value blackboard created once per run and
// passed by reference through every step. It is safe for concurrent access.
//
// Contract:
//   - Mutations update the Updated timestamp
//   - Container values (slices, maps) are copied on read and write so callers
//     can never observe or cause partial mutation of an internal buffer
//   - SetErr marks the run as aborted; downstream steps check Err before
//     acting
//   - Clone performs deep copies of the known container shapes for safe
//     divergence.
type SharedState struct {
	id      string
	values  map[string]any
	created time.Time
	updated time.Time
	mu      sync.RWMutex
}

// NewSharedState creates an empty shared state with a generated run id.
func NewSharedState() *SharedState {
	return NewSharedStateWithID(NewID())
}

// NewSharedStateWithID creates an empty shared state bound to the given run id.
func NewSharedStateWithID(id string) *SharedState {
	now := time.Now()
	return &SharedState{id: id, values: map[string]any{}, created: now, updated: now}
}

// ID returns the run identifier this state belongs to.
func (s *SharedState) ID() string { return s.id }

// Created returns the creation time of the state.
func (s *SharedState) Created() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.created
}

// Updated returns the time of the most recent mutation.
func (s *SharedState) Updated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updated
}

// Get returns the raw value and existence flag for a key. Container values
// are returned as stored; prefer the typed accessors which copy.
func (s *SharedState) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores a key/value pair, updating the Updated timestamp. Slice and map
// values of the known shapes are copied before storage.
func (s *SharedState) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = copyValue(value)
	s.updated = time.Now()
}

// Has reports whether a key is present.
func (s *SharedState) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}

// GetString returns the string value for key, or "" if absent or not a string.
func (s *SharedState) GetString(key string) string {
	v, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// GetStringSlice returns a copy of the []string value for key, or nil.
func (s *SharedState) GetStringSlice(key string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil
	}
	src, ok := v.([]string)
	if !ok {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// GetStringMap returns a copy of the map[string]string value for key, or nil.
func (s *SharedState) GetStringMap(key string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil
	}
	src, ok := v.(map[string]string)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, val := range src {
		out[k] = val
	}
	return out
}

// GetQAMap returns a copy of the map[string][]QAPair value for key, or nil.
func (s *SharedState) GetQAMap(key string) map[string][]QAPair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil
	}
	src, ok := v.(map[string][]QAPair)
	if !ok {
		return nil
	}
	out := make(map[string][]QAPair, len(src))
	for k, pairs := range src {
		cp := make([]QAPair, len(pairs))
		copy(cp, pairs)
		out[k] = cp
	}
	return out
}

// GetResults returns a copy of the []WorkResult value for key, or nil.
func (s *SharedState) GetResults(key string) []WorkResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil
	}
	src, ok := v.([]WorkResult)
	if !ok {
		return nil
	}
	out := make([]WorkResult, len(src))
	copy(out, src)
	return out
}

// Err returns the abort sentinel error, or nil if the run has not aborted.
func (s *SharedState) Err() error {
	v, ok := s.Get(KeyError)
	if !ok {
		return nil
	}
	err, _ := v.(error)
	return err
}

// SetErr marks the run as aborted with the given error.
func (s *SharedState) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[KeyError] = err
	s.updated = time.Now()
}

// Snapshot returns a shallow copy of all key/value pairs for inspection.
// Mutating the returned map does not affect the state; container values are
// copied where their shape is known.
func (s *SharedState) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = copyValue(v)
	}
	return out
}

// Clone returns a deep copy of the state safe for independent mutation.
// The clone keeps the same run id.
func (s *SharedState) Clone() *SharedState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := &SharedState{id: s.id, values: make(map[string]any, len(s.values)), created: s.created, updated: s.updated}
	for k, v := range s.values {
		clone.values[k] = copyValue(v)
	}
	return clone
}

// copyValue copies the container shapes SharedState is known to carry so that
// internal buffers are never aliased by callers. Unknown types pass through.
func copyValue(v any) any {
	switch val := v.(type) {
	case []string:
		cp := make([]string, len(val))
		copy(cp, val)
		return cp
	case map[string]string:
		cp := make(map[string]string, len(val))
		for k, s := range val {
			cp[k] = s
		}
		return cp
	case map[string][]QAPair:
		cp := make(map[string][]QAPair, len(val))
		for k, pairs := range val {
			ps := make([]QAPair, len(pairs))
			copy(ps, pairs)
			cp[k] = ps
		}
		return cp
	case []QAPair:
		cp := make([]QAPair, len(val))
		copy(cp, val)
		return cp
	case []WorkResult:
		cp := make([]WorkResult, len(val))
		copy(cp, val)
		return cp
	default:
		return v
	}
}
