package generation

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/videodigest/core"
)

// CallLimiter enforces a maximum number of allowed generation calls per run.
type CallLimiter struct {
	max   int
	count int
	mu    sync.Mutex
}

// NewCallLimiter creates a new limiter with a max number of calls.
// If max == 0, unlimited calls are allowed.
func NewCallLimiter(max int) *CallLimiter {
	return &CallLimiter{max: max}
}

// Increment increases the call counter and returns an error if the limit is
// exceeded.
func (cl *CallLimiter) Increment() error {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.count++
	if cl.max > 0 && cl.count > cl.max {
		return fmt.Errorf("exceeded max generation calls: %d", cl.max)
	}

	return nil
}

// Count returns the current number of calls made.
func (cl *CallLimiter) Count() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	return cl.count
}

// Remaining returns how many calls are left before hitting the limit.
func (cl *CallLimiter) Remaining() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if cl.max == 0 {
		return -1 // unlimited
	}

	return cl.max - cl.count
}

// limitedGenerator wraps a ContentGenerator, charging every call against a
// shared CallLimiter. A tripped limiter surfaces as an ordinary generation
// error, which the fan-out records as a per-topic failure.
type limitedGenerator struct {
	inner   ContentGenerator
	limiter *CallLimiter
}

// WithLimit returns a ContentGenerator that fails once limiter is exhausted.
func WithLimit(inner ContentGenerator, limiter *CallLimiter) ContentGenerator {
	return &limitedGenerator{inner: inner, limiter: limiter}
}

// GenerateQA implements ContentGenerator.
func (g *limitedGenerator) GenerateQA(ctx context.Context, topic, transcript string) ([]core.QAPair, error) {
	if err := g.limiter.Increment(); err != nil {
		return nil, err
	}
	return g.inner.GenerateQA(ctx, topic, transcript)
}

// GenerateExplanation implements ContentGenerator.
func (g *limitedGenerator) GenerateExplanation(ctx context.Context, topic, transcript string) (string, error) {
	if err := g.limiter.Increment(); err != nil {
		return "", err
	}
	return g.inner.GenerateExplanation(ctx, topic, transcript)
}
