package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/videodigest/core"
)

// ContentGenerator is the minimal interface required by the fan-out workers
// to expand one topic into content. Both calls are treated as black-box
// remote operations with unspecified latency; implementations return a value
// or an error and must respect context cancellation.
type ContentGenerator interface {
	// GenerateQA produces question/answer pairs for a topic grounded in the
	// transcript.
	GenerateQA(ctx context.Context, topic, transcript string) ([]core.QAPair, error)

	// GenerateExplanation produces a simplified explanation of a topic
	// grounded in the transcript.
	GenerateExplanation(ctx context.Context, topic, transcript string) (string, error)
}

// TopicExtractor discovers the topics covered by a transcript. It is a
// separate interface because topic extraction runs once per pipeline, before
// the fan-out, while ContentGenerator runs once per topic inside it.
type TopicExtractor interface {
	ExtractTopics(ctx context.Context, transcript string) ([]string, error)
}

// Info contains metadata about a generator implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// MockGenerator is a lightweight in-memory ContentGenerator + TopicExtractor
// useful for tests and examples. Canned content can be registered per topic;
// unregistered topics get deterministic synthetic output.
type MockGenerator struct {
	info         Info
	qa           map[string][]core.QAPair
	explanations map[string]string
	topics       []string
	failTopics   map[string]error
}

// NewMockGenerator constructs an empty MockGenerator.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{
		info:         Info{Name: "mock", Provider: "mock"},
		qa:           map[string][]core.QAPair{},
		explanations: map[string]string{},
		failTopics:   map[string]error{},
	}
}

// AddQA registers canned question/answer pairs for a topic.
func (m *MockGenerator) AddQA(topic string, pairs ...core.QAPair) { m.qa[topic] = pairs }

// AddExplanation registers a canned explanation for a topic.
func (m *MockGenerator) AddExplanation(topic, text string) { m.explanations[topic] = text }

// AddTopics registers the topic list returned by ExtractTopics.
func (m *MockGenerator) AddTopics(topics ...string) { m.topics = topics }

// FailTopic makes both generation calls for a topic return the given error.
func (m *MockGenerator) FailTopic(topic string, err error) { m.failTopics[topic] = err }

// Info returns metadata about the mock.
func (m *MockGenerator) Info() Info { return m.info }

// GenerateQA implements ContentGenerator.
func (m *MockGenerator) GenerateQA(ctx context.Context, topic, transcript string) ([]core.QAPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.failTopics[topic]; ok {
		return nil, err
	}
	if pairs, ok := m.qa[topic]; ok {
		out := make([]core.QAPair, len(pairs))
		copy(out, pairs)
		return out, nil
	}
	return []core.QAPair{{
		Question: fmt.Sprintf("What is %s?", topic),
		Answer:   fmt.Sprintf("Mock answer about %s.", topic),
	}}, nil
}

// GenerateExplanation implements ContentGenerator.
func (m *MockGenerator) GenerateExplanation(ctx context.Context, topic, transcript string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.failTopics[topic]; ok {
		return "", err
	}
	if text, ok := m.explanations[topic]; ok {
		return text, nil
	}
	return fmt.Sprintf("Mock explanation of %s.", topic), nil
}

// ExtractTopics implements TopicExtractor. Without registered topics it
// derives a single topic from the first transcript words.
func (m *MockGenerator) ExtractTopics(ctx context.Context, transcript string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(m.topics) > 0 {
		out := make([]string, len(m.topics))
		copy(out, m.topics)
		return out, nil
	}
	fields := strings.Fields(transcript)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty transcript")
	}
	n := min(len(fields), 3)
	return []string{strings.Join(fields[:n], " ")}, nil
}
