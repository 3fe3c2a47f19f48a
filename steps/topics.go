package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/generation"
	"github.com/hupe1980/videodigest/logging"
	"github.com/hupe1980/videodigest/pipeline"
)

// ExtractTopicsOptions holds optional overrides for NewExtractTopicsStep.
type ExtractTopicsOptions struct {
	// MaxTopics caps the topic list; zero means no cap.
	MaxTopics int
	// Logger receives extraction progress; defaults to NoOpLogger.
	Logger logging.Logger
}

// ExtractTopicsStep runs the topic extractor over the transcript once and
// publishes the ordered topic list that drives the fan-out.
type ExtractTopicsStep struct {
	pipeline.BaseStep
	extractor generation.TopicExtractor
	maxTopics int
	logger    logging.Logger

	transcript string
	topics     []string
}

// NewExtractTopicsStep creates the extraction step over the given extractor.
func NewExtractTopicsStep(extractor generation.TopicExtractor, optFns ...func(o *ExtractTopicsOptions)) *ExtractTopicsStep {
	opts := ExtractTopicsOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ExtractTopicsStep{
		BaseStep:  pipeline.NewBaseStep("ExtractTopics"),
		extractor: extractor,
		maxTopics: opts.MaxTopics,
		logger:    opts.Logger,
	}
}

// Prepare requires the transcript.
func (s *ExtractTopicsStep) Prepare(_ context.Context, state *core.SharedState) error {
	transcript := state.GetString(core.KeyTranscript)
	if transcript == "" {
		return core.NewMissingInputError(core.KeyTranscript)
	}
	s.transcript = transcript
	return nil
}

// Execute calls the extractor. An empty topic list is an error: with no
// topics there is nothing for the rest of the pipeline to do.
func (s *ExtractTopicsStep) Execute(ctx context.Context, _ *core.SharedState) error {
	start := time.Now()

	topics, err := s.extractor.ExtractTopics(ctx, s.transcript)
	if err != nil {
		return fmt.Errorf("extract topics: %w", err)
	}
	if len(topics) == 0 {
		return fmt.Errorf("extractor returned no topics")
	}
	if s.maxTopics > 0 && len(topics) > s.maxTopics {
		topics = topics[:s.maxTopics]
	}
	s.topics = topics

	s.logger.Info("topics extracted", "count", len(topics), "duration", time.Since(start))

	return nil
}

// Finalize publishes the topic list.
func (s *ExtractTopicsStep) Finalize(_ context.Context, state *core.SharedState) error {
	state.Set(core.KeyTopics, s.topics)
	return nil
}
