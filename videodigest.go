// Package videodigest provides a high-level façade over the pipeline engine
// and its collaborators (video source, content generation, report store and
// logging) for turning a video URL into a browsable study report. Most
// applications interact with this package by:
//  1. Creating a VideoDigest via New() with a content generator (defaults
//     cover everything else)
//  2. Calling Run() with a video URL
//  3. Reading the rendered pages from the report store, keyed by the
//     returned run id
//
// The façade wires the standard step sequence; callers needing a custom
// pipeline can assemble their own Sequencer from the building blocks
// directly. All defaults are safe for local development and testing;
// production deployments typically supply a durable report store and a
// structured logger.
package videodigest

import (
	"context"
	"fmt"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/generation"
	"github.com/hupe1980/videodigest/logging"
	"github.com/hupe1980/videodigest/orchestrator"
	"github.com/hupe1980/videodigest/pipeline"
	"github.com/hupe1980/videodigest/source"
	"github.com/hupe1980/videodigest/steps"
	"github.com/hupe1980/videodigest/store"
)

// Options configures the VideoDigest instance.
type Options struct {
	// Extractor discovers topics; when nil and Generator implements
	// TopicExtractor, the generator is used.
	Extractor generation.TopicExtractor

	// Source supplies metadata and transcripts (defaults to YouTube).
	Source source.VideoSource

	// Reports receives the rendered pages (defaults to in-memory).
	Reports store.ReportStore

	// Pool bounds the topic fan-out worker pool.
	Pool orchestrator.PoolConfig

	// MaxTopics caps the extracted topic list; zero means no cap.
	MaxTopics int

	// MaxGenerationCalls budgets the total generation calls per run; zero
	// means unlimited.
	MaxGenerationCalls int

	// HTML additionally renders and persists HTML report pages.
	HTML bool

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// VideoDigest is the high-level façade aggregating the pipeline and services.
type VideoDigest struct {
	generator generation.ContentGenerator
	opts      Options
}

// New creates a new VideoDigest over the given content generator with
// optional overrides. Any unset collaborator is initialized with a default
// implementation.
func New(generator generation.ContentGenerator, optFns ...func(o *Options)) *VideoDigest {
	opts := Options{
		Source:  source.NewYouTube(),
		Reports: store.NewInMemoryStore(),
		Pool:    orchestrator.PoolConfig{MaxConcurrency: orchestrator.DefaultMaxConcurrency},
		Logger:  logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Extractor == nil {
		if ex, ok := generator.(generation.TopicExtractor); ok {
			opts.Extractor = ex
		}
	}

	return &VideoDigest{generator: generator, opts: opts}
}

// Reports returns the configured report store.
func (d *VideoDigest) Reports() store.ReportStore { return d.opts.Reports }

// Run executes the standard pipeline for the given video URL and returns the
// run id under which the report pages are stored. The returned state carries
// the merged content; on failure the state holds whatever the completed
// steps produced.
func (d *VideoDigest) Run(ctx context.Context, videoURL string) (string, *core.SharedState, error) {
	state := core.NewSharedStateWithID(core.NewID())
	state.Set(core.KeyVideoURL, videoURL)

	state, err := d.RunPipeline(ctx, state)
	return state.ID(), state, err
}

// RunPipeline executes the standard step sequence against a pre-populated
// state. It exists so callers can seed extra keys or reuse a run id; most
// callers want Run.
func (d *VideoDigest) RunPipeline(ctx context.Context, state *core.SharedState) (*core.SharedState, error) {
	if d.opts.Extractor == nil {
		return state, fmt.Errorf("no topic extractor configured and generator does not extract topics")
	}

	generator := d.generator
	if d.opts.MaxGenerationCalls > 0 {
		generator = generation.WithLimit(generator, generation.NewCallLimiter(d.opts.MaxGenerationCalls))
	}

	seq := pipeline.NewSequencer([]core.Step{
		steps.NewValidateInputStep(),
		steps.NewFetchVideoStep(d.opts.Source, func(o *steps.FetchVideoOptions) {
			o.Logger = d.opts.Logger
		}),
		steps.NewExtractTopicsStep(d.opts.Extractor, func(o *steps.ExtractTopicsOptions) {
			o.MaxTopics = d.opts.MaxTopics
			o.Logger = d.opts.Logger
		}),
		orchestrator.NewTopicOrchestrator(generator, func(o *orchestrator.Options) {
			o.Pool = d.opts.Pool
			o.Logger = d.opts.Logger
		}),
		steps.NewRenderReportStep(d.opts.Reports, func(o *steps.RenderReportOptions) {
			o.HTML = d.opts.HTML
			o.Logger = d.opts.Logger
		}),
	}, func(o *pipeline.SequencerOptions) {
		o.Logger = d.opts.Logger
	})

	return seq.Run(ctx, state)
}
