package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/logging"
	"github.com/hupe1980/videodigest/pipeline"
	"github.com/hupe1980/videodigest/source"
)

// FetchVideoOptions holds optional overrides for NewFetchVideoStep.
type FetchVideoOptions struct {
	// Logger receives fetch progress; defaults to NoOpLogger.
	Logger logging.Logger
}

// FetchVideoStep retrieves video metadata and the full transcript from the
// configured VideoSource. A video without a transcript is fatal for the run,
// since every downstream step works off the transcript text.
type FetchVideoStep struct {
	pipeline.BaseStep
	src    source.VideoSource
	logger logging.Logger

	videoID    string
	metadata   *source.VideoMetadata
	transcript string
}

// NewFetchVideoStep creates the retrieval step over the given source.
func NewFetchVideoStep(src source.VideoSource, optFns ...func(o *FetchVideoOptions)) *FetchVideoStep {
	opts := FetchVideoOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &FetchVideoStep{
		BaseStep: pipeline.NewBaseStep("FetchVideo"),
		src:      src,
		logger:   opts.Logger,
	}
}

// Prepare requires the resolved video identifier.
func (s *FetchVideoStep) Prepare(_ context.Context, state *core.SharedState) error {
	id := state.GetString(core.KeyVideoID)
	if id == "" {
		return core.NewMissingInputError(core.KeyVideoID)
	}
	s.videoID = id
	return nil
}

// Execute fetches metadata and transcript. Metadata is best effort: a
// metadata failure is logged and the run continues with the transcript
// alone, but a transcript failure aborts.
func (s *FetchVideoStep) Execute(ctx context.Context, _ *core.SharedState) error {
	start := time.Now()

	meta, err := s.src.FetchMetadata(ctx, s.videoID)
	if err != nil {
		s.logger.Warn("metadata fetch failed", "videoID", s.videoID, "error", err)
	} else {
		s.metadata = meta
	}

	transcript, err := s.src.FetchTranscript(ctx, s.videoID)
	if err != nil {
		return fmt.Errorf("fetch transcript for %s: %w", s.videoID, err)
	}
	s.transcript = transcript

	s.logger.Info("video fetched",
		"videoID", s.videoID,
		"transcriptChars", len(transcript),
		"duration", time.Since(start),
	)

	return nil
}

// Finalize publishes the metadata (when available) and the transcript.
func (s *FetchVideoStep) Finalize(_ context.Context, state *core.SharedState) error {
	if s.metadata != nil {
		state.Set(core.KeyMetadata, map[string]string{
			"id":       s.metadata.ID,
			"title":    s.metadata.Title,
			"author":   s.metadata.Author,
			"provider": s.metadata.Provider,
		})
	}
	state.Set(core.KeyTranscript, s.transcript)
	return nil
}
