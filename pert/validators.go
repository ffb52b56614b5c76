// SPDX-License-Identifier: MIT
// Package: pert
//
// Purpose:
//   - Provide a single, canonical source of truth for parameter validation.
//   - Keep constructors minimal by delegating every invariant check here.
//   - Return plain sentinel errors (optionally tagged with an element index)
//     so call sites can wrap uniformly.
//
// Determinism:
//   - Checks run in a fixed order and the first violation wins; errors are
//     never aggregated, so messages are stable for a given input.
//   - Each check sweeps every element before the next check starts, so a
//     batch reports the highest-priority violation, not the lowest index.
//
// Note:
//   - Broadcast compatibility is checked before the ordering checks: the
//     elementwise comparisons have no meaning on non-broadcastable inputs.

package pert

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elementErr tags err with the offending element index when the batch has
// more than one element; scalar distributions get the bare sentinel.
func elementErr(n, i int, err error) error {
	if n <= 1 {
		return err
	}

	return fmt.Errorf("element %d: %w", i, err)
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// validateFinite rejects NaN/±Inf in lambda or any parameter slice.
// Complexity: O(total elements).
func validateFinite(lambda float64, groups ...[]float64) error {
	if isNonFinite(lambda) {
		return ErrNonFinite
	}
	for _, g := range groups {
		for _, v := range g {
			if isNonFinite(v) {
				return ErrNonFinite
			}
		}
	}

	return nil
}

// validateLambda rejects lambda <= 0.
func validateLambda(lambda float64) error {
	if lambda <= 0 {
		return ErrLambda
	}

	return nil
}

// broadcastLen returns the common length of 1-D operands under numpy rules:
// each length is 1 or equal to the others. Lengths {0, 1} broadcast to 0.
//
// Returns ErrShapeMismatch if any two non-unit lengths differ.
func broadcastLen(lens ...int) (int, error) {
	n := 1
	for _, l := range lens {
		switch {
		case l == 1:
			continue
		case n == 1:
			n = l
		case l != n:
			return 0, ErrShapeMismatch
		}
	}

	return n, nil
}

// pick returns xs[i] under broadcasting: a unit slice repeats its only value.
func pick(xs []float64, i int) float64 {
	if len(xs) == 1 {
		return xs[0]
	}

	return xs[i]
}

// validateOrdering enforces min < mode < max elementwise over n broadcast elements.
// Three sweeps, in priority order: mode<min, max<mode, then equality.
func validateOrdering(minVals, modes, maxVals []float64, n int) error {
	var i int
	for i = 0; i < n; i++ {
		if pick(modes, i) < pick(minVals, i) {
			return elementErr(n, i, ErrMinAboveMode)
		}
	}
	for i = 0; i < n; i++ {
		if pick(maxVals, i) < pick(modes, i) {
			return elementErr(n, i, ErrModeAboveMax)
		}
	}
	for i = 0; i < n; i++ {
		if pick(minVals, i) == pick(modes, i) || pick(modes, i) == pick(maxVals, i) {
			return elementErr(n, i, ErrDegenerate)
		}
	}

	return nil
}

// validateParams is the composite check used by every constructor:
// Finite → Lambda → Broadcast → Ordering.
//
// Returns the broadcast length on success.
func validateParams(minVals, modes, maxVals []float64, lambda float64) (int, error) {
	if err := validateFinite(lambda, minVals, modes, maxVals); err != nil {
		return 0, err
	}
	if err := validateLambda(lambda); err != nil {
		return 0, err
	}
	n, err := broadcastLen(len(minVals), len(modes), len(maxVals))
	if err != nil {
		return 0, err
	}
	if err = validateOrdering(minVals, modes, maxVals, n); err != nil {
		return 0, err
	}

	return n, nil
}
