// SPDX-License-Identifier: MIT

package interrupt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degseq/interrupt"
)

func TestLimiter_ChecksEveryN(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := interrupt.NewLimiter(ctx, 4, 0)
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Tick(), "tick %d must not consult ctx", i)
	}
	err := l.Tick()
	require.Error(t, err)
	assert.ErrorIs(t, err, interrupt.ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 4, l.Count())
}

func TestLimiter_Defaults(t *testing.T) {
	//nolint:staticcheck // nil ctx is accepted on purpose
	l := interrupt.NewLimiter(nil, 0, -1)
	for i := 0; i < 10*interrupt.DefaultEvery; i++ {
		require.NoError(t, l.Tick())
	}
	assert.NoError(t, l.Check())
}

func TestLimiter_Budget(t *testing.T) {
	l := interrupt.NewLimiter(context.Background(), 100, 3)
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Tick())
	}
	assert.ErrorIs(t, l.Tick(), interrupt.ErrBudgetExhausted)
}

func TestLimiter_Deadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()

	err := interrupt.NewLimiter(ctx, 1, 0).Tick()
	assert.ErrorIs(t, err, interrupt.ErrInterrupted)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
