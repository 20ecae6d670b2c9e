package provider

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

var (
	ErrNoProvidersConfigured = errors.New("no generation providers configured")
	ErrAllProvidersExhausted = errors.New("all generation providers failed")
)

const defaultAttemptTimeout = 25 * time.Second

// Executor tries each configured provider once, in a randomized order, until
// one succeeds. The random order is a load-balancing policy: no provider is
// preferred over another across calls.
type Executor struct {
	generators     []Generator
	order          func(n int) []int
	attemptTimeout time.Duration
}

type ExecutorOption func(*Executor)

// WithOrder overrides the try-order function. Tests inject a deterministic
// order here.
func WithOrder(order func(n int) []int) ExecutorOption {
	return func(e *Executor) {
		e.order = order
	}
}

func WithAttemptTimeout(d time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.attemptTimeout = d
	}
}

func NewExecutor(generators []Generator, opts ...ExecutorOption) *Executor {
	e := &Executor{
		generators:     generators,
		order:          rand.Perm,
		attemptTimeout: defaultAttemptTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate attempts the prompt against each provider in a random permutation
// and returns the first successful text. Each provider gets exactly one
// attempt, bounded by the per-attempt timeout; caller cancellation
// propagates. An empty provider set and full exhaustion fail with distinct
// sentinel errors.
func (e *Executor) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	log := config.WithContext(ctx)

	if len(e.generators) == 0 {
		return "", ErrNoProvidersConfigured
	}

	var lastErr error
	for _, idx := range e.order(len(e.generators)) {
		gen := e.generators[idx]

		attemptCtx, cancel := context.WithTimeout(ctx, e.attemptTimeout)
		text, err := gen.Generate(attemptCtx, prompt, systemInstruction)
		cancel()

		if err == nil {
			return text, nil
		}

		lastErr = err
		log.WithError(err).Warnf("provider %s failed, trying next", gen.Name())

		if ctx.Err() != nil {
			break
		}
	}

	return "", fmt.Errorf("%w: %w", ErrAllProvidersExhausted, lastErr)
}

// ProviderCount reports how many providers are configured.
func (e *Executor) ProviderCount() int {
	return len(e.generators)
}
