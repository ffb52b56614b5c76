// SPDX-License-Identifier: MIT
// Package pert: the scalar distribution.
//
// Purpose:
//   - Validate (min, mode, max, λ) once, derive the Beta shape parameters and
//     the four moments, and cache everything on an immutable value.
//
// Lifecycle:
//   - validate → derive shape parameters → derive moments; no mutation after.

package pert

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opNew      = "New"
	opNewBatch = "NewBatch"
)

// Dist is a Beta-PERT distribution over [min, max] with most-likely value mode.
//
// The zero value is not usable; build one with New. A *Dist is immutable and
// safe for concurrent use.
type Dist struct {
	a, b, c float64 // min, mode, max
	lambda  float64 // concentration, > 0

	// Derived at construction.
	alpha, beta float64
	rng         float64 // c - a
	mean        float64
	variance    float64
	skewness    float64
	kurtosis    float64
}

// New builds a Beta-PERT distribution from a three-point estimate.
//
// Errors (first violated wins, all wrap ErrInvalidParameter):
//   - ErrNonFinite   : NaN/±Inf in min, mode, max or lambda.
//   - ErrLambda      : lambda <= 0.
//   - ErrMinAboveMode: mode < min.
//   - ErrModeAboveMax: max < mode.
//   - ErrDegenerate  : min == mode or mode == max.
//
// Complexity: O(1).
func New(minVal, mode, maxVal float64, opts ...Option) (*Dist, error) {
	o := gatherOptions(opts...)
	if _, err := validateParams([]float64{minVal}, []float64{mode}, []float64{maxVal}, o.lambda); err != nil {
		return nil, validatorErrorf(opNew, err)
	}
	d := build(minVal, mode, maxVal, o.lambda)

	return &d, nil
}

// build derives shape parameters and moments from validated inputs.
func build(a, b, c, lambda float64) Dist {
	r := c - a
	alpha := 1 + lambda*((b-a)/r)
	beta := 1 + lambda*((c-b)/r)

	mean := (a + lambda*b + c) / (2 + lambda)
	variance := ((mean - a) * (c - mean)) / (lambda + 3)

	s := alpha + beta
	skewness := (2 * (beta - alpha) * math.Sqrt(s+1)) / ((s + 2) * math.Sqrt(alpha*beta))
	kurtosis := ((lambda + 2) * ((alpha-beta)*(alpha-beta)*(s+1) + alpha*beta*(s+2))) /
		(alpha * beta * (s + 2) * (s + 3))

	return Dist{
		a: a, b: b, c: c,
		lambda:   lambda,
		alpha:    alpha,
		beta:     beta,
		rng:      r,
		mean:     mean,
		variance: variance,
		skewness: skewness,
		kurtosis: kurtosis,
	}
}

// Min returns the lower bound a.
func (d *Dist) Min() float64 { return d.a }

// Mode returns the most-likely value b.
func (d *Dist) Mode() float64 { return d.b }

// Max returns the upper bound c.
func (d *Dist) Max() float64 { return d.c }

// Lambda returns the concentration parameter.
func (d *Dist) Lambda() float64 { return d.lambda }

// Alpha returns the first Beta shape parameter.
func (d *Dist) Alpha() float64 { return d.alpha }

// Beta returns the second Beta shape parameter.
func (d *Dist) Beta() float64 { return d.beta }

// Range returns max - min.
func (d *Dist) Range() float64 { return d.rng }

// Mean returns (min + λ·mode + max)/(λ + 2).
func (d *Dist) Mean() float64 { return d.mean }

// Variance returns (mean-min)(max-mean)/(λ+3).
func (d *Dist) Variance() float64 { return d.variance }

// StdDev returns the square root of Variance.
func (d *Dist) StdDev() float64 { return math.Sqrt(d.variance) }

// Skewness returns the cached skewness.
func (d *Dist) Skewness() float64 { return d.skewness }

// Kurtosis returns the cached kurtosis.
func (d *Dist) Kurtosis() float64 { return d.kurtosis }

// Stats returns a snapshot of the cached moments.
func (d *Dist) Stats() Stats {
	return Stats{
		Mean:     d.mean,
		Var:      d.variance,
		Skewness: d.skewness,
		Kurtosis: d.kurtosis,
	}
}

// String renders every stored and derived field, e.g.
//
//	PERT(a=0, b=5, c=10, lambda=4, alpha=3, beta=3, mean=5, var=3.5714285714285716, skew=0, kurt=0.6666666666666666)
func (d *Dist) String() string {
	return fmt.Sprintf("PERT(a=%v, b=%v, c=%v, lambda=%v, alpha=%v, beta=%v, mean=%v, var=%v, skew=%v, kurt=%v)",
		d.a, d.b, d.c, d.lambda, d.alpha, d.beta, d.mean, d.variance, d.skewness, d.kurtosis)
}

func (d *Dist) unit() unitBeta {
	return unitBeta{alpha: d.alpha, beta: d.beta}
}

// toUnit maps x onto the Beta domain and clips to [0, 1].
func (d *Dist) toUnit(x float64) float64 {
	u := (x - d.a) / d.rng
	switch {
	case u < 0:
		return 0
	case u > 1:
		return 1
	}

	return u // NaN falls through unchanged
}

// fromUnit maps a Beta-domain value back onto [min, max].
func (d *Dist) fromUnit(u float64) float64 {
	return u*d.rng + d.a
}
