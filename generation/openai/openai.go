// Package openai provides a generation.ContentGenerator and
// generation.TopicExtractor backed by the OpenAI Chat Completions API. It
// adapts videodigest's prompt/response shapes into the SDK's message format
// and back.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/generation"
)

// Options configure the OpenAI generator adapter. Fields mirror a subset of
// Chat Completion parameters intentionally kept minimal; extend via
// functional options without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Generator wraps the OpenAI Chat Completions API behind the generation
// interfaces.
type Generator struct {
	client *openai.Client
	opts   Options
}

// NewGenerator creates a new OpenAI generator using the official client.
func NewGenerator(optFns ...func(o *Options)) *Generator {
	client := openai.NewClient()
	return NewGeneratorFromClient(&client, optFns...)
}

// NewGeneratorFromClient creates a new OpenAI generator from an existing client.
func NewGeneratorFromClient(client *openai.Client, optFns ...func(o *Options)) *Generator {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Generator{client: client, opts: opts}
}

// Info returns metadata about the generator implementation.
func (g *Generator) Info() generation.Info {
	return generation.Info{Name: g.opts.Model, Provider: "openai"}
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

// complete performs one non-streaming chat completion and returns the
// assistant text.
func (g *Generator) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Model:               g.opts.Model,
		Temperature:         openai.Float(g.opts.Temperature),
		MaxCompletionTokens: openai.Int(g.opts.MaxCompletionTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
