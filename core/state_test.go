package core

import (
	"errors"
	"testing"
)

func TestSharedState_SetGetAndClone(t *testing.T) {
	s := NewSharedStateWithID("run-1")

	s.Set(KeyTranscript, "hello world")
	s.Set(KeyTopics, []string{"a", "b"})

	if got := s.GetString(KeyTranscript); got != "hello world" {
		t.Fatalf("transcript not stored: %q", got)
	}

	clone := s.Clone()
	if clone == s {
		t.Error("Clone should be a different pointer")
	}
	if clone.ID() != "run-1" {
		t.Errorf("clone should keep the run id, got %q", clone.ID())
	}

	clone.Set(KeyVideoID, "xyz")
	if s.Has(KeyVideoID) {
		t.Error("original should not have clone's new key")
	}
}

func TestSharedState_ContainerValuesAreCopied(t *testing.T) {
	s := NewSharedState()

	topics := []string{"a", "b"}
	s.Set(KeyTopics, topics)
	topics[0] = "mutated"

	got := s.GetStringSlice(KeyTopics)
	if got[0] != "a" {
		t.Error("slice should be copied on write")
	}
	got[1] = "mutated"
	if s.GetStringSlice(KeyTopics)[1] != "b" {
		t.Error("slice should be copied on read")
	}

	qa := map[string][]QAPair{"a": {{Question: "q", Answer: "ans"}}}
	s.Set(KeyQAByTopic, qa)
	qa["a"][0].Answer = "mutated"
	if s.GetQAMap(KeyQAByTopic)["a"][0].Answer != "ans" {
		t.Error("qa map should be deep-copied on write")
	}
}

func TestSharedState_TypedAccessorsOnWrongShape(t *testing.T) {
	s := NewSharedState()
	s.Set(KeyTopics, 42)

	if got := s.GetStringSlice(KeyTopics); got != nil {
		t.Errorf("expected nil for mismatched shape, got %v", got)
	}
	if got := s.GetString(KeyTopics); got != "" {
		t.Errorf("expected empty string for mismatched shape, got %q", got)
	}
}

func TestSharedState_ErrSentinel(t *testing.T) {
	s := NewSharedState()
	if s.Err() != nil {
		t.Fatal("fresh state should not carry an error")
	}

	sentinel := errors.New("boom")
	s.SetErr(sentinel)

	if !errors.Is(s.Err(), sentinel) {
		t.Errorf("expected sentinel error, got %v", s.Err())
	}
	if !s.Has(KeyError) {
		t.Error("error key should be present after SetErr")
	}
}

func TestSharedState_Snapshot(t *testing.T) {
	s := NewSharedState()
	s.Set(KeyVideoID, "abc")

	snap := s.Snapshot()
	snap[KeyVideoID] = "mutated"

	if s.GetString(KeyVideoID) != "abc" {
		t.Error("snapshot mutation should not affect state")
	}
}
