package steps

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/generation"
	"github.com/hupe1980/videodigest/source"
	"github.com/hupe1980/videodigest/store"
)

type fakeSource struct {
	metadata      *source.VideoMetadata
	metadataErr   error
	transcript    string
	transcriptErr error
}

func (f *fakeSource) FetchMetadata(_ context.Context, _ string) (*source.VideoMetadata, error) {
	return f.metadata, f.metadataErr
}

func (f *fakeSource) FetchTranscript(_ context.Context, _ string) (string, error) {
	return f.transcript, f.transcriptErr
}

func runStep(t *testing.T, step core.Step, state *core.SharedState) error {
	t.Helper()
	ctx := context.Background()
	if err := step.Prepare(ctx, state); err != nil {
		return err
	}
	if err := step.Execute(ctx, state); err != nil {
		return err
	}
	return step.Finalize(ctx, state)
}

func TestValidateInputStep(t *testing.T) {
	state := core.NewSharedState()
	state.Set(core.KeyVideoURL, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	require.NoError(t, runStep(t, NewValidateInputStep(), state))
	assert.Equal(t, "dQw4w9WgXcQ", state.GetString(core.KeyVideoID))
}

func TestValidateInputStep_MissingURL(t *testing.T) {
	err := NewValidateInputStep().Prepare(context.Background(), core.NewSharedState())

	var missing *core.MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, core.KeyVideoURL, missing.Key)
}

func TestValidateInputStep_BadURL(t *testing.T) {
	state := core.NewSharedState()
	state.Set(core.KeyVideoURL, "https://example.com/not-a-video")

	step := NewValidateInputStep()
	require.NoError(t, step.Prepare(context.Background(), state))
	assert.Error(t, step.Execute(context.Background(), state))
}

func TestFetchVideoStep(t *testing.T) {
	src := &fakeSource{
		metadata:   &source.VideoMetadata{ID: "abc", Title: "Talk", Author: "Speaker", Provider: "YouTube"},
		transcript: "hello world",
	}

	state := core.NewSharedState()
	state.Set(core.KeyVideoID, "abc")

	require.NoError(t, runStep(t, NewFetchVideoStep(src), state))

	assert.Equal(t, "hello world", state.GetString(core.KeyTranscript))
	meta := state.GetStringMap(core.KeyMetadata)
	require.NotNil(t, meta)
	assert.Equal(t, "Talk", meta["title"])
	assert.Equal(t, "Speaker", meta["author"])
}

func TestFetchVideoStep_MetadataFailureIsNotFatal(t *testing.T) {
	src := &fakeSource{
		metadataErr: errors.New("oEmbed unavailable"),
		transcript:  "hello world",
	}

	state := core.NewSharedState()
	state.Set(core.KeyVideoID, "abc")

	require.NoError(t, runStep(t, NewFetchVideoStep(src), state))

	assert.Equal(t, "hello world", state.GetString(core.KeyTranscript))
	assert.False(t, state.Has(core.KeyMetadata))
}

func TestFetchVideoStep_TranscriptFailureIsFatal(t *testing.T) {
	src := &fakeSource{transcriptErr: source.ErrNoTranscript}

	state := core.NewSharedState()
	state.Set(core.KeyVideoID, "abc")

	err := runStep(t, NewFetchVideoStep(src), state)
	require.ErrorIs(t, err, source.ErrNoTranscript)
	assert.False(t, state.Has(core.KeyTranscript))
}

func TestFetchVideoStep_MissingVideoID(t *testing.T) {
	err := NewFetchVideoStep(&fakeSource{}).Prepare(context.Background(), core.NewSharedState())

	var missing *core.MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, core.KeyVideoID, missing.Key)
}

func TestExtractTopicsStep(t *testing.T) {
	gen := generation.NewMockGenerator()
	gen.AddTopics("Goroutines", "Channels")

	state := core.NewSharedState()
	state.Set(core.KeyTranscript, "some transcript")

	require.NoError(t, runStep(t, NewExtractTopicsStep(gen), state))
	assert.Equal(t, []string{"Goroutines", "Channels"}, state.GetStringSlice(core.KeyTopics))
}

func TestExtractTopicsStep_MaxTopics(t *testing.T) {
	gen := generation.NewMockGenerator()
	gen.AddTopics("A", "B", "C", "D")

	state := core.NewSharedState()
	state.Set(core.KeyTranscript, "some transcript")

	step := NewExtractTopicsStep(gen, func(o *ExtractTopicsOptions) {
		o.MaxTopics = 2
	})
	require.NoError(t, runStep(t, step, state))
	assert.Equal(t, []string{"A", "B"}, state.GetStringSlice(core.KeyTopics))
}

func TestExtractTopicsStep_MissingTranscript(t *testing.T) {
	err := NewExtractTopicsStep(generation.NewMockGenerator()).Prepare(context.Background(), core.NewSharedState())

	var missing *core.MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, core.KeyTranscript, missing.Key)
}

func renderState() *core.SharedState {
	state := core.NewSharedStateWithID("run-1")
	state.Set(core.KeyMetadata, map[string]string{"title": "Talk", "author": "Speaker"})
	state.Set(core.KeyTopics, []string{"Goroutines", "Channels"})
	state.Set(core.KeyQAByTopic, map[string][]core.QAPair{
		"Goroutines": {{Question: "Q1", Answer: "A1"}},
	})
	state.Set(core.KeyExplanationByTopic, map[string]string{
		"Goroutines": "Short explanation.",
	})
	state.Set(core.KeyTopicErrors, map[string]string{
		"Channels": "boom",
	})
	return state
}

func TestRenderReportStep(t *testing.T) {
	reports := store.NewInMemoryStore()
	state := renderState()

	step := NewRenderReportStep(reports)
	require.NoError(t, runStep(t, step, state))

	names, err := reports.List("run-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"index.md", "topic_01.md"}, names)

	index := state.GetString(core.KeyReport)
	assert.Contains(t, index, "# Talk")
	assert.Contains(t, index, "boom")
}

func TestRenderReportStep_HTML(t *testing.T) {
	reports := store.NewInMemoryStore()
	state := renderState()

	step := NewRenderReportStep(reports, func(o *RenderReportOptions) {
		o.HTML = true
	})
	require.NoError(t, runStep(t, step, state))

	names, err := reports.List("run-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"index.md", "topic_01.md", "index.html", "topic_01.html"}, names)

	data, err := reports.Get("run-1", "index.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Talk</title>")
}

func TestRenderReportStep_MissingContent(t *testing.T) {
	state := core.NewSharedState()
	state.Set(core.KeyTopics, []string{"Goroutines"})

	err := NewRenderReportStep(store.NewInMemoryStore()).Prepare(context.Background(), state)

	var missing *core.MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, core.KeyQAByTopic, missing.Key)
}
