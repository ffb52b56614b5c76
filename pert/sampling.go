// SPDX-License-Identifier: MIT
// Package pert: random variates.
//
// Randomness policy:
//   - Variates are drawn only from the source handed to the call.
//   - A nil source is replaced by a fresh time-seeded source for that call;
//     the package-global generator is never used.
//   - Sample(size, seed) builds a new source per call, so identical
//     (seed, size) pairs reproduce identical output.

package pert

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand draws size independent variates using src.
// Each Beta(alpha, beta) draw is rescaled by ·range + min, so every value lies
// within [min, max] (up to rounding at the exact bounds).
//
// A size <= 0 returns an empty slice. A nil src draws from a fresh
// time-seeded source.
//
// Complexity: O(size).
func (d *Dist) Rand(size int, src rand.Source) []float64 {
	if size <= 0 {
		return []float64{}
	}
	if src == nil {
		src = newSource()
	}

	unit := d.unit().dist(src)
	out := make([]float64, size)
	for i := range out {
		out[i] = d.fromUnit(unit.Rand())
	}

	return out
}

// Sample draws size variates from a source seeded with seed.
func (d *Dist) Sample(size int, seed uint64) []float64 {
	return d.Rand(size, rand.NewSource(seed))
}

// newSource returns a PCG source seeded from the wall clock.
func newSource() rand.Source {
	return rand.NewSource(uint64(time.Now().UnixNano()))
}
