// SPDX-License-Identifier: MIT

// Package pert: functional configuration for the constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) applying setters over the defaults.
//
// Notes:
//   - Option setters never validate. Values are checked by New/NewBatch so a
//     bad lambda surfaces as ErrLambda instead of a panic.
package pert

// DefaultLambda is the classic PERT concentration: mean = (min + 4·mode + max)/6.
const DefaultLambda = 4.0

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	lambda float64 // DefaultLambda
}

// Lambda reports the configured concentration parameter.
func (o Options) Lambda() float64 { return o.lambda }

// WithLambda sets the concentration parameter λ.
// Smaller values widen the distribution; larger values pull mass toward the mode.
//
// Example:
//
//	d, err := pert.New(0, 5, 10, pert.WithLambda(2))
func WithLambda(lambda float64) Option {
	return func(o *Options) { o.lambda = lambda }
}

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		lambda: DefaultLambda,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
