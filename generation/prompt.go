package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/videodigest/core"
)

// System prompts shared by the provider adapters. Kept here so both backends
// produce interchangeable output shapes.
const (
	QASystemPrompt = "You are an educational content writer. Given a topic and a video transcript, " +
		"produce question/answer pairs that test understanding of the topic as covered in the transcript. " +
		"Respond with a JSON array of objects with \"question\" and \"answer\" string fields and nothing else."

	ExplanationSystemPrompt = "You are a teacher explaining concepts to a beginner. Given a topic and a " +
		"video transcript, explain the topic in simple language grounded in the transcript. " +
		"Respond with the explanation text only."

	TopicsSystemPrompt = "You extract the main topics covered by a video transcript. " +
		"Respond with a JSON array of short topic strings and nothing else."
)

// QAUserPrompt renders the user message for a question/answer request.
func QAUserPrompt(topic, transcript string) string {
	return fmt.Sprintf("Topic: %s\n\nTranscript:\n%s", topic, transcript)
}

// ExplanationUserPrompt renders the user message for an explanation request.
func ExplanationUserPrompt(topic, transcript string) string {
	return fmt.Sprintf("Explain the topic %q for a beginner.\n\nTranscript:\n%s", topic, transcript)
}

// TopicsUserPrompt renders the user message for a topic extraction request.
func TopicsUserPrompt(transcript string) string {
	return fmt.Sprintf("Transcript:\n%s", transcript)
}

// ParseQAPairs decodes a model response into question/answer pairs. Models
// occasionally wrap JSON in markdown code fences; those are stripped first.
func ParseQAPairs(text string) ([]core.QAPair, error) {
	cleaned := StripCodeFence(text)

	var pairs []core.QAPair
	if err := json.Unmarshal([]byte(cleaned), &pairs); err != nil {
		return nil, fmt.Errorf("decode qa response: %w", err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("qa response contained no pairs")
	}
	return pairs, nil
}

// ParseTopics decodes a model response into a topic list.
func ParseTopics(text string) ([]string, error) {
	cleaned := StripCodeFence(text)

	var topics []string
	if err := json.Unmarshal([]byte(cleaned), &topics); err != nil {
		return nil, fmt.Errorf("decode topics response: %w", err)
	}

	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("topics response contained no topics")
	}
	return out, nil
}

// StripCodeFence removes a surrounding markdown code fence (``` or ```json)
// from a model response, returning the inner text trimmed.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:] // drop the language tag line
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")

	return strings.TrimSpace(trimmed)
}
