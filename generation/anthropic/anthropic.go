// Package anthropic provides a generation.ContentGenerator and
// generation.TopicExtractor backed by the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/generation"
)

// Options configures the Anthropic generator adapter (temperature, model id,
// max tokens, API key). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Generator wraps the Anthropic Messages API behind the generation interfaces.
type Generator struct {
	client *anthropic.Client
	opts   Options
}

// NewGenerator creates a new Anthropic generator using the official client.
func NewGenerator(optFns ...func(o *Options)) *Generator {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Generator{
		client: &client,
		opts:   opts,
	}
}

// NewGeneratorFromClient creates a new Anthropic generator from an existing client.
func NewGeneratorFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Generator {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Generator{
		client: client,
		opts:   opts,
	}
}

// Info returns metadata about the generator implementation.
func (g *Generator) Info() generation.Info {
	return generation.Info{Name: string(g.opts.Model), Provider: "anthropic"}
}

// GenerateQA implements generation.ContentGenerator.
func (g *Generator) GenerateQA(ctx context.Context, topic, transcript string) ([]core.QAPair, error) {
	text, err := g.complete(ctx, generation.QASystemPrompt, generation.QAUserPrompt(topic, transcript))
	if err != nil {
		return nil, err
	}
	return generation.ParseQAPairs(text)
}

// GenerateExplanation implements generation.ContentGenerator.
func (g *Generator) GenerateExplanation(ctx context.Context, topic, transcript string) (string, error) {
	return g.complete(ctx, generation.ExplanationSystemPrompt, generation.ExplanationUserPrompt(topic, transcript))
}

// ExtractTopics implements generation.TopicExtractor.
func (g *Generator) ExtractTopics(ctx context.Context, transcript string) ([]string, error) {
	text, err := g.complete(ctx, generation.TopicsSystemPrompt, generation.TopicsUserPrompt(transcript))
	if err != nil {
		return nil, err
	}
	return generation.ParseTopics(text)
}

// complete performs one non-streaming message call and concatenates the text
// blocks of the response.
func (g *Generator) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model: g.opts.Model,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
		System:      []anthropic.TextBlockParam{{Text: system}},
		MaxTokens:   g.opts.MaxTokens,
		Temperature: anthropic.Float(g.opts.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.AsText().Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("anthropic response contained no text")
	}
	return text, nil
}
