package orchestrator

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/generation"
	"github.com/hupe1980/videodigest/logging"
	"github.com/hupe1980/videodigest/pipeline"
)

// DefaultMaxConcurrency bounds the worker pool when no explicit value is
// configured.
const DefaultMaxConcurrency = 4

// PoolConfig bounds the fan-out worker pool.
type PoolConfig struct {
	// MaxConcurrency is the maximum number of worker tasks running at once
	// regardless of work item count. Must be >= 1.
	MaxConcurrency int
}

// Validate checks the pool configuration.
func (c PoolConfig) Validate() error {
	if c.MaxConcurrency < 1 {
		return fmt.Errorf("max concurrency must be >= 1, got %d", c.MaxConcurrency)
	}
	return nil
}

// Options holds optional overrides for NewTopicOrchestrator.
type Options struct {
	// Pool bounds the worker pool; defaults to DefaultMaxConcurrency.
	Pool PoolConfig
	// Logger receives fan-out progress; defaults to NoOpLogger.
	Logger logging.Logger
}

// TopicOrchestrator is the fan-out/fan-in step. Prepare reads and validates
// the topic list and transcript, Execute runs one WorkerTask per topic
// through the bounded pool behind a full barrier, and Finalize merges the
// per-topic results into SharedState in original topic order.
//
// An orchestrator instance carries per-run scratch in its staged fields and
// must not be shared between concurrently running pipelines.
type TopicOrchestrator struct {
	pipeline.BaseStep
	generator generation.ContentGenerator
	pool      PoolConfig
	logger    logging.Logger

	// staged by Prepare / Execute, merged by Finalize
	topics     []string
	transcript string
	results    []core.WorkResult
}

// NewTopicOrchestrator creates the fan-out step over the given generator.
func NewTopicOrchestrator(generator generation.ContentGenerator, optFns ...func(o *Options)) *TopicOrchestrator {
	opts := Options{
		Pool:   PoolConfig{MaxConcurrency: DefaultMaxConcurrency},
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &TopicOrchestrator{
		BaseStep:  pipeline.NewBaseStep("ExpandTopics"),
		generator: generator,
		pool:      opts.Pool,
		logger:    opts.Logger,
	}
}

// Prepare validates the pool configuration and the required inputs. Topics
// are de-duplicated here, first occurrence wins, so a repeated topic can
// never silently overwrite another's content during the merge.
func (o *TopicOrchestrator) Prepare(_ context.Context, state *core.SharedState) error {
	if err := o.pool.Validate(); err != nil {
		return err
	}

	topics := state.GetStringSlice(core.KeyTopics)
	if len(topics) == 0 {
		return core.NewMissingInputError(core.KeyTopics)
	}

	transcript := state.GetString(core.KeyTranscript)
	if transcript == "" {
		return core.NewMissingInputError(core.KeyTranscript)
	}

	o.topics = dedupe(topics)
	o.transcript = transcript

	return nil
}

// Execute performs the fan-out: one work item per topic, submitted to a pool
// bounded by MaxConcurrency. Submission beyond the bound blocks until a slot
// frees (back-pressure, not failure). Execute returns only after every item
// has produced a WorkResult; a single worker's failure is captured in its
// result and never cancels the others.
func (o *TopicOrchestrator) Execute(ctx context.Context, _ *core.SharedState) error {
	start := time.Now()

	results := make([]core.WorkResult, len(o.topics))

	var g errgroup.Group
	g.SetLimit(o.pool.MaxConcurrency)

	for i, topic := range o.topics {
		item := core.WorkItem{Topic: topic, Transcript: o.transcript}
		g.Go(func() error {
			results[i] = NewWorkerTask(item, o.generator).Run(ctx)
			if results[i].Failed() {
				o.logger.Warn("work item failed", "topic", item.Topic, "detail", results[i].ErrDetail)
			}
			return nil
		})
	}

	// Full barrier: workers report failures through their WorkResult, never
	// through the group, so Wait's error is always nil.
	_ = g.Wait()

	o.results = results

	failures := 0
	for _, r := range results {
		if r.Failed() {
			failures++
		}
	}
	o.logger.Info("fan-out completed",
		"items", len(results),
		"failures", failures,
		"max_concurrency", o.pool.MaxConcurrency,
		"duration", time.Since(start),
	)

	return nil
}

// Finalize performs the fan-in: successful results populate the per-topic
// content mappings, failures are retained in the topic error mapping, and
// the full result set is written for visibility. Only a run where every item
// failed is fatal; partial success is the default completion mode.
func (o *TopicOrchestrator) Finalize(_ context.Context, state *core.SharedState) error {
	qaByTopic := make(map[string][]core.QAPair)
	explanationByTopic := make(map[string]string)
	topicErrors := make(map[string]string)

	// o.results is indexed by the de-duplicated original topic order, so the
	// merge is deterministic regardless of completion order.
	for _, res := range o.results {
		if res.Failed() {
			topicErrors[res.Topic] = res.ErrDetail
			continue
		}
		qaByTopic[res.Topic] = res.QAPairs
		explanationByTopic[res.Topic] = res.Explanation
	}

	if len(o.results) > 0 && len(topicErrors) == len(o.results) {
		return &core.AllWorkFailedError{Failures: topicErrors}
	}

	state.Set(core.KeyTopics, o.topics)
	state.Set(core.KeyQAByTopic, qaByTopic)
	state.Set(core.KeyExplanationByTopic, explanationByTopic)
	state.Set(core.KeyTopicErrors, topicErrors)
	state.Set(core.KeyResults, o.results)

	return nil
}

// Results returns the staged result set; it is empty before Execute ran.
func (o *TopicOrchestrator) Results() []core.WorkResult {
	out := make([]core.WorkResult, len(o.results))
	copy(out, o.results)
	return out
}

// dedupe removes duplicate topics keeping the first occurrence in order.
func dedupe(topics []string) []string {
	seen := make(map[string]struct{}, len(topics))
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
