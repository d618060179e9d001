// SPDX-License-Identifier: MIT
// Package: degseq
//
// errors.go - sentinel errors for the degseq package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Every argument error wraps ErrInvalidArgument, so callers can test the
//     class without enumerating the refinements.
//   • Implementations attach method context with %w (see methodErrorf).
//   • Option constructors panic on meaningless values; Generate never panics.

package degseq

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/degseq/graphical"
	"github.com/katalvlaran/degseq/interrupt"
)

// ErrInvalidArgument is the class of every malformed-input error.
var ErrInvalidArgument = errors.New("degseq: invalid argument")

var (
	// ErrUnknownMethod indicates a Method value outside the defined set.
	ErrUnknownMethod = fmt.Errorf("%w: unknown method", ErrInvalidArgument)

	// ErrNegativeDegree indicates a negative entry in a degree sequence.
	ErrNegativeDegree = fmt.Errorf("%w: negative degree", ErrInvalidArgument)

	// ErrLengthMismatch indicates directed out- and in-degree sequences of
	// different length.
	ErrLengthMismatch = fmt.Errorf("%w: out- and in-degree lengths differ", ErrInvalidArgument)

	// ErrOddDegreeSum indicates an undirected sequence with an odd sum.
	ErrOddDegreeSum = fmt.Errorf("%w: degree sum is odd", ErrInvalidArgument)

	// ErrSumMismatch indicates directed sequences whose sums differ.
	ErrSumMismatch = fmt.Errorf("%w: out- and in-degree sums differ", ErrInvalidArgument)

	// ErrSumOverflow indicates a degree sum too large to allocate stubs for.
	ErrSumOverflow = fmt.Errorf("%w: degree sum overflows", ErrInvalidArgument)

	// ErrUnsupportedMode indicates a method that cannot serve the resolved
	// directedness (VL on directed input).
	ErrUnsupportedMode = fmt.Errorf("%w: method does not support this mode", ErrInvalidArgument)
)

// ErrNotGraphical indicates a well-formed sequence that the method's edge
// policy cannot realize. It also matches graphical.ErrNotGraphical.
var ErrNotGraphical = fmt.Errorf("degseq: %w", graphical.ErrNotGraphical)

// ErrInterrupted indicates the context was cancelled or expired during an
// unbounded retry loop. The returned error also matches ctx.Err().
var ErrInterrupted = interrupt.ErrInterrupted

// ErrAttemptsExhausted indicates the WithMaxAttempts budget ran out before a
// sample was accepted. It also matches interrupt.ErrBudgetExhausted.
var ErrAttemptsExhausted = fmt.Errorf("degseq: %w", interrupt.ErrBudgetExhausted)

// methodErrorf prefixes an error with the method name, keeping %w chains.
// It returns an error of the form "<Method>: <formatted message>".
func methodErrorf(m Method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", m, fmt.Errorf(format, args...))
}

// limiterError maps a Limiter failure onto the package sentinels.
func limiterError(m Method, restarts int, err error) error {
	if errors.Is(err, interrupt.ErrBudgetExhausted) {
		return methodErrorf(m, "after %d attempts: %w", restarts, ErrAttemptsExhausted)
	}

	return methodErrorf(m, "after %d attempts: %w", restarts, err)
}
