package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/logging"
	"github.com/hupe1980/videodigest/pipeline"
	"github.com/hupe1980/videodigest/report"
	"github.com/hupe1980/videodigest/source"
	"github.com/hupe1980/videodigest/store"
)

// RenderReportOptions holds optional overrides for NewRenderReportStep.
type RenderReportOptions struct {
	// HTML additionally renders and persists HTML pages next to the
	// markdown ones.
	HTML bool
	// Logger receives rendering progress; defaults to NoOpLogger.
	Logger logging.Logger
}

// RenderReportStep turns the merged per-topic content into report pages and
// persists them to the configured store under the run's id. It renders
// whatever succeeded: failed topics appear on the index with their failure
// detail but get no page of their own.
type RenderReportStep struct {
	pipeline.BaseStep
	reports store.ReportStore
	html    bool
	logger  logging.Logger

	input report.Input
	pages []report.Page
	htmls []report.HTMLPage
}

// NewRenderReportStep creates the rendering step over the given store.
func NewRenderReportStep(reports store.ReportStore, optFns ...func(o *RenderReportOptions)) *RenderReportStep {
	opts := RenderReportOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &RenderReportStep{
		BaseStep: pipeline.NewBaseStep("RenderReport"),
		reports:  reports,
		html:     opts.HTML,
		logger:   opts.Logger,
	}
}

// Prepare gathers the merged content. Topics and the explanation mapping are
// required; metadata and per-topic errors are optional.
func (s *RenderReportStep) Prepare(_ context.Context, state *core.SharedState) error {
	topics := state.GetStringSlice(core.KeyTopics)
	if len(topics) == 0 {
		return core.NewMissingInputError(core.KeyTopics)
	}

	qaByTopic := state.GetQAMap(core.KeyQAByTopic)
	if qaByTopic == nil {
		return core.NewMissingInputError(core.KeyQAByTopic)
	}

	s.input = report.Input{
		Topics:             topics,
		QAByTopic:          qaByTopic,
		ExplanationByTopic: state.GetStringMap(core.KeyExplanationByTopic),
		TopicErrors:        state.GetStringMap(core.KeyTopicErrors),
	}
	if meta := state.GetStringMap(core.KeyMetadata); meta != nil {
		s.input.Metadata = &source.VideoMetadata{
			ID:       meta["id"],
			Title:    meta["title"],
			Author:   meta["author"],
			Provider: meta["provider"],
		}
	}

	return nil
}

// Execute renders the pages and writes them to the store.
func (s *RenderReportStep) Execute(_ context.Context, state *core.SharedState) error {
	start := time.Now()

	s.pages = report.Build(s.input)
	for _, page := range s.pages {
		if err := s.reports.Save(state.ID(), page.Name, []byte(page.Markdown)); err != nil {
			return fmt.Errorf("save page %s: %w", page.Name, err)
		}
	}

	if s.html {
		htmls, err := report.ConvertPages(s.pages)
		if err != nil {
			return err
		}
		for _, page := range htmls {
			if err := s.reports.Save(state.ID(), page.Name, []byte(page.HTML)); err != nil {
				return fmt.Errorf("save page %s: %w", page.Name, err)
			}
		}
		s.htmls = htmls
	}

	s.logger.Info("report rendered",
		"runID", state.ID(),
		"pages", len(s.pages),
		"html", s.html,
		"duration", time.Since(start),
	)

	return nil
}

// Finalize publishes the index page markdown as the run's report.
func (s *RenderReportStep) Finalize(_ context.Context, state *core.SharedState) error {
	state.Set(core.KeyReport, s.pages[0].Markdown)
	return nil
}

// Pages returns the rendered markdown pages. Valid after Execute.
func (s *RenderReportStep) Pages() []report.Page { return s.pages }

// HTMLPages returns the rendered HTML pages when HTML output is enabled.
// Valid after Execute.
func (s *RenderReportStep) HTMLPages() []report.HTMLPage { return s.htmls }
