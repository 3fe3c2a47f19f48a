package orchestrator

import (
	"context"
	"fmt"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/generation"
)

// WorkerTask is the per-item unit run inside the pool: an isolated
// three-phase computation scoped to exactly one topic. It receives its work
// item by value, stages everything in task-local fields, and never touches
// SharedState; the orchestrator's Finalize merges its WorkResult.
type WorkerTask struct {
	item      core.WorkItem
	generator generation.ContentGenerator

	// staged by Execute
	qaPairs     []core.QAPair
	explanation string
}

// NewWorkerTask constructs a worker task for one work item.
func NewWorkerTask(item core.WorkItem, generator generation.ContentGenerator) *WorkerTask {
	return &WorkerTask{item: item, generator: generator}
}

// Topic returns the topic this task is scoped to.
func (w *WorkerTask) Topic() string { return w.item.Topic }

// Prepare validates the work item.
func (w *WorkerTask) Prepare(_ context.Context) error {
	if w.item.Topic == "" {
		return core.NewMissingInputError("topic")
	}
	return nil
}

// Execute invokes the content-generation collaborator twice. Both calls must
// succeed: a topic with only half its content is not useful downstream.
func (w *WorkerTask) Execute(ctx context.Context) error {
	qaPairs, err := w.generator.GenerateQA(ctx, w.item.Topic, w.item.Transcript)
	if err != nil {
		return fmt.Errorf("qa generation: %w", err)
	}

	explanation, err := w.generator.GenerateExplanation(ctx, w.item.Topic, w.item.Transcript)
	if err != nil {
		return fmt.Errorf("explanation generation: %w", err)
	}

	w.qaPairs = qaPairs
	w.explanation = explanation

	return nil
}

// Finalize packages the staged outputs into a success WorkResult.
func (w *WorkerTask) Finalize() core.WorkResult {
	return core.WorkResult{
		Topic:       w.item.Topic,
		QAPairs:     w.qaPairs,
		Explanation: w.explanation,
	}
}

// Run drives the task through its phases and converts every failure mode,
// including runtime panics, into a failure WorkResult. Nothing escapes a
// worker that could take down the pool.
func (w *WorkerTask) Run(ctx context.Context) (res core.WorkResult) {
	defer func() {
		if r := recover(); r != nil {
			res = w.failure(fmt.Sprintf("unexpected fault: %v", r))
		}
	}()

	if err := w.Prepare(ctx); err != nil {
		return w.failure(err.Error())
	}
	if err := w.Execute(ctx); err != nil {
		return w.failure(err.Error())
	}

	return w.Finalize()
}

func (w *WorkerTask) failure(detail string) core.WorkResult {
	wfe := &core.WorkerFailureError{Topic: w.item.Topic, Detail: detail}
	return core.WorkResult{Topic: w.item.Topic, ErrDetail: wfe.Error()}
}
