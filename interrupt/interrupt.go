// SPDX-License-Identifier: MIT
//
// Package interrupt provides the cooperative cancellation check used by
// unbounded retry loops.
//
// A Limiter is ticked once per loop iteration (one rejected attempt, one
// full restart). Every `every` ticks it consults the context; a cancelled or
// expired context aborts the loop with ErrInterrupted joined with ctx.Err().
// An optional budget caps the total number of ticks for hosts that need
// bounded latency; exceeding it yields ErrBudgetExhausted.
//
// A Limiter is owned by a single call and is not safe for concurrent use.
package interrupt

import (
	"context"
	"errors"
)

// DefaultEvery is the number of ticks between two context checks.
const DefaultEvery = 256

var (
	// ErrInterrupted indicates the caller's context was cancelled or expired.
	ErrInterrupted = errors.New("interrupt: operation interrupted")

	// ErrBudgetExhausted indicates the optional tick budget ran out.
	ErrBudgetExhausted = errors.New("interrupt: attempt budget exhausted")
)

// Limiter counts loop iterations and periodically checks a context.
type Limiter struct {
	ctx    context.Context
	every  int
	budget int
	since  int // ticks since the last context check
	total  int
}

// NewLimiter returns a Limiter over ctx.
// every <= 0 selects DefaultEvery; budget <= 0 means unbounded.
// A nil ctx is treated as context.Background().
func NewLimiter(ctx context.Context, every, budget int) *Limiter {
	if ctx == nil {
		ctx = context.Background()
	}
	if every <= 0 {
		every = DefaultEvery
	}
	if budget < 0 {
		budget = 0
	}

	return &Limiter{ctx: ctx, every: every, budget: budget}
}

// Tick records one iteration. It returns ErrBudgetExhausted once more than
// budget ticks were recorded, and the Check result every `every` ticks.
// Complexity: O(1).
func (l *Limiter) Tick() error {
	l.total++
	if l.budget > 0 && l.total > l.budget {
		return ErrBudgetExhausted
	}
	l.since++
	if l.since >= l.every {
		l.since = 0
		return l.Check()
	}

	return nil
}

// Check consults the context immediately.
func (l *Limiter) Check() error {
	if err := l.ctx.Err(); err != nil {
		return errors.Join(ErrInterrupted, err)
	}

	return nil
}

// Count returns the number of ticks recorded so far.
func (l *Limiter) Count() int { return l.total }
