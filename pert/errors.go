// SPDX-License-Identifier: MIT
// Package pert: sentinel error set.
// Construction is the only place a distribution can fail. Every parameter
// violation wraps ErrInvalidParameter, so callers may match either the kind
// (errors.Is(err, ErrInvalidParameter)) or the exact condition
// (errors.Is(err, ErrLambda)).
//
// ERROR PRIORITY (enforced in validateParams, covered by tests):
// non-finite -> lambda -> shape -> min/mode order -> mode/max order -> degenerate.

package pert

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is the single error kind raised by constructors.
	ErrInvalidParameter = errors.New("pert: invalid parameter")

	// ErrNonFinite signals a NaN or ±Inf among min, mode, max or lambda.
	ErrNonFinite = fmt.Errorf("%w: non-finite values present in inputs", ErrInvalidParameter)

	// ErrLambda signals lambda <= 0.
	ErrLambda = fmt.Errorf("%w: lambda parameter should be greater than 0", ErrInvalidParameter)

	// ErrMinAboveMode signals mode < min for at least one element.
	ErrMinAboveMode = fmt.Errorf("%w: min should be lower than mode", ErrInvalidParameter)

	// ErrModeAboveMax signals max < mode for at least one element.
	ErrModeAboveMax = fmt.Errorf("%w: mode should be lower than max", ErrInvalidParameter)

	// ErrDegenerate signals min == mode or mode == max for at least one element.
	// Zero-width sub-ranges are rejected rather than special-cased.
	ErrDegenerate = fmt.Errorf("%w: min, mode and max should be pairwise different", ErrInvalidParameter)

	// ErrShapeMismatch signals slice lengths that do not broadcast together,
	// either at Batch construction or when querying a Batch.
	ErrShapeMismatch = fmt.Errorf("%w: shape mismatch", ErrInvalidParameter)

	// ErrIndexOutOfRange is returned by Batch.At for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("pert: index out of range")
)
