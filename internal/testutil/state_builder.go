package testutil

import (
	"github.com/hupe1980/videodigest/core"
)

// StateBuilder helps construct shared state with fluent chaining for tests.
// Example:
//
//	state := NewStateBuilder("run-1").Transcript("...").Topics("A", "B").Build()
type StateBuilder struct {
	id     string
	values map[string]any
}

// NewStateBuilder creates a new builder for a run with the given id.
// Use chainable methods then call Build.
func NewStateBuilder(id string) *StateBuilder {
	return &StateBuilder{id: id, values: map[string]any{}}
}

// Set sets or overwrites an arbitrary key/value pair (chainable).
func (b *StateBuilder) Set(key string, val any) *StateBuilder {
	b.values[key] = val
	return b
}

// VideoURL sets the input URL (chainable).
func (b *StateBuilder) VideoURL(url string) *StateBuilder {
	return b.Set(core.KeyVideoURL, url)
}

// Transcript sets the transcript text (chainable).
func (b *StateBuilder) Transcript(text string) *StateBuilder {
	return b.Set(core.KeyTranscript, text)
}

// Topics sets the ordered topic list (chainable).
func (b *StateBuilder) Topics(topics ...string) *StateBuilder {
	return b.Set(core.KeyTopics, topics)
}

// Metadata sets the video metadata mapping (chainable).
func (b *StateBuilder) Metadata(meta map[string]string) *StateBuilder {
	return b.Set(core.KeyMetadata, meta)
}

// Build returns a *core.SharedState with the accumulated values.
func (b *StateBuilder) Build() *core.SharedState {
	s := core.NewSharedStateWithID(b.id)
	for k, v := range b.values {
		s.Set(k, v)
	}
	return s
}
