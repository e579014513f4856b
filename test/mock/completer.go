// Package mock provides test doubles for the travel affiliate service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific replies).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/siam-trails/travel-affiliate-service/internal/domain"
)

// Completer is a configurable fake implementation of domain.ChatCompleter.
// It supports per-model errors, delays and canned replies for testing
// fallback, timeout and caching behavior end to end.
type Completer struct {
	reply       string
	err         error
	modelErrors map[string]error
	delay       time.Duration
	calls       []string
	mu          sync.Mutex
}

// NewCompleter creates a completer that answers every model with reply.
func NewCompleter(reply string) *Completer {
	return &Completer{
		reply:       reply,
		modelErrors: make(map[string]error),
	}
}

// WithReply configures the text returned on success.
func (c *Completer) WithReply(reply string) *Completer {
	c.reply = reply
	return c
}

// WithError configures every call to fail with err.
func (c *Completer) WithError(err error) *Completer {
	c.err = err
	return c
}

// WithModelError configures calls for one model to fail with err.
func (c *Completer) WithModelError(model string, err error) *Completer {
	c.modelErrors[model] = err
	return c
}

// WithDelay configures the completer to wait before responding.
// This is useful for testing attempt timeouts.
func (c *Completer) WithDelay(d time.Duration) *Completer {
	c.delay = d
	return c
}

// Complete implements domain.ChatCompleter.
func (c *Completer) Complete(ctx context.Context, model string, messages []domain.ChatMessage) (string, error) {
	c.mu.Lock()
	c.calls = append(c.calls, model)
	c.mu.Unlock()

	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.delay):
		}
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if err, ok := c.modelErrors[model]; ok {
		return "", err
	}
	if c.err != nil {
		return "", c.err
	}

	return c.reply, nil
}

// CallCount returns the number of times Complete was called.
func (c *Completer) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// Calls returns the models requested, in call order.
func (c *Completer) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// Reset clears the recorded calls.
func (c *Completer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = nil
}

// Ensure Completer implements domain.ChatCompleter at compile time.
var _ domain.ChatCompleter = (*Completer)(nil)

// Conversation builds a single-turn user conversation.
func Conversation(question string) []domain.ChatMessage {
	return []domain.ChatMessage{{Role: domain.RoleUser, Content: question}}
}
