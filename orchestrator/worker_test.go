package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/generation"
)

func TestWorkerTask_Success(t *testing.T) {
	gen := generation.NewMockGenerator()
	gen.AddQA("A", core.QAPair{Question: "q", Answer: "ans"})
	gen.AddExplanation("A", "plain words")

	task := NewWorkerTask(core.WorkItem{Topic: "A", Transcript: "t"}, gen)
	res := task.Run(context.Background())

	require.False(t, res.Failed())
	assert.Equal(t, "A", res.Topic)
	assert.Equal(t, "plain words", res.Explanation)
	require.Len(t, res.QAPairs, 1)
	assert.Equal(t, "ans", res.QAPairs[0].Answer)
}

func TestWorkerTask_EmptyTopic(t *testing.T) {
	task := NewWorkerTask(core.WorkItem{Transcript: "t"}, generation.NewMockGenerator())
	res := task.Run(context.Background())

	assert.True(t, res.Failed())
	assert.Contains(t, res.ErrDetail, "topic")
}

func TestWorkerTask_BothCallsRequired(t *testing.T) {
	gen := generation.NewMockGenerator()
	gen.FailTopic("A", errors.New("rate limited"))

	task := NewWorkerTask(core.WorkItem{Topic: "A", Transcript: "t"}, gen)
	res := task.Run(context.Background())

	assert.True(t, res.Failed())
	assert.Contains(t, res.ErrDetail, "rate limited")
}

func TestWorkerTask_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	task := NewWorkerTask(core.WorkItem{Topic: "A", Transcript: "t"}, generation.NewMockGenerator())
	res := task.Run(ctx)

	// A cancelled context is an ordinary failure, not a crash.
	assert.True(t, res.Failed())
	assert.Contains(t, res.ErrDetail, context.Canceled.Error())
}
