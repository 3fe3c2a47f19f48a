package videodigest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/generation"
	"github.com/hupe1980/videodigest/orchestrator"
	"github.com/hupe1980/videodigest/source"
)

type stubSource struct {
	metadata   *source.VideoMetadata
	transcript string
}

func (s *stubSource) FetchMetadata(_ context.Context, _ string) (*source.VideoMetadata, error) {
	return s.metadata, nil
}

func (s *stubSource) FetchTranscript(_ context.Context, _ string) (string, error) {
	return s.transcript, nil
}

func newTestDigest(gen generation.ContentGenerator, optFns ...func(o *Options)) *VideoDigest {
	base := func(o *Options) {
		o.Source = &stubSource{
			metadata:   &source.VideoMetadata{ID: "dQw4w9WgXcQ", Title: "Concurrency Talk", Author: "Speaker"},
			transcript: "goroutines channels select statements",
		}
	}
	return New(gen, append([]func(o *Options){base}, optFns...)...)
}

func TestRun_EndToEnd(t *testing.T) {
	gen := generation.NewMockGenerator()
	gen.AddTopics("Goroutines", "Channels")
	gen.AddExplanation("Goroutines", "Lightweight threads.")
	gen.AddQA("Goroutines", core.QAPair{Question: "Q", Answer: "A"})

	d := newTestDigest(gen)

	runID, state, err := d.Run(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	assert.Equal(t, []string{"Goroutines", "Channels"}, state.GetStringSlice(core.KeyTopics))
	assert.Contains(t, state.GetString(core.KeyReport), "# Concurrency Talk")

	names, err := d.Reports().List(runID)
	require.NoError(t, err)
	assert.Contains(t, names, "index.md")
	assert.Contains(t, names, "topic_01.md")
	assert.Contains(t, names, "topic_02.md")
}

func TestRun_PartialFailureStillRenders(t *testing.T) {
	gen := generation.NewMockGenerator()
	gen.AddTopics("Goroutines", "Channels")
	gen.FailTopic("Channels", errors.New("rate limited"))

	d := newTestDigest(gen)

	runID, state, err := d.Run(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	topicErrors := state.GetStringMap(core.KeyTopicErrors)
	require.Len(t, topicErrors, 1)
	assert.Contains(t, topicErrors["Channels"], "rate limited")

	data, err := d.Reports().Get(runID, "index.md")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Channels *(unavailable)*")
}

func TestRun_AllTopicsFailAborts(t *testing.T) {
	gen := generation.NewMockGenerator()
	gen.AddTopics("Goroutines")
	gen.FailTopic("Goroutines", errors.New("down"))

	d := newTestDigest(gen)

	_, state, err := d.Run(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.Error(t, err)

	var allFailed *core.AllWorkFailedError
	assert.ErrorAs(t, err, &allFailed)
	assert.False(t, state.Has(core.KeyReport))
}

func TestRun_BadURLAborts(t *testing.T) {
	d := newTestDigest(generation.NewMockGenerator())

	_, _, err := d.Run(context.Background(), "https://example.com/nope")

	var aborted *core.SequenceAbortedError
	require.ErrorAs(t, err, &aborted)
	assert.Equal(t, "ValidateInput", aborted.Step)
}

func TestRun_GenerationBudget(t *testing.T) {
	gen := generation.NewMockGenerator()
	gen.AddTopics("A", "B", "C")

	d := newTestDigest(gen, func(o *Options) {
		// budget covers one topic (two calls) only
		o.MaxGenerationCalls = 2
		o.Pool = orchestrator.PoolConfig{MaxConcurrency: 1}
	})

	_, state, err := d.Run(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Len(t, state.GetStringMap(core.KeyExplanationByTopic), 1)
	assert.Len(t, state.GetStringMap(core.KeyTopicErrors), 2)
}

func TestRun_MaxTopics(t *testing.T) {
	gen := generation.NewMockGenerator()
	gen.AddTopics("A", "B", "C", "D")

	d := newTestDigest(gen, func(o *Options) {
		o.MaxTopics = 2
	})

	_, state, err := d.Run(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, state.GetStringSlice(core.KeyTopics))
}

func TestNew_NoExtractor(t *testing.T) {
	// a ContentGenerator that cannot extract topics and no explicit extractor
	gen := generation.WithLimit(generation.NewMockGenerator(), generation.NewCallLimiter(0))

	d := New(gen)

	_, _, err := d.Run(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	assert.ErrorContains(t, err, "no topic extractor")
}
