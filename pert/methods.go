// SPDX-License-Identifier: MIT
// Package pert: query surface.
//
// Every query maps x onto the unit interval with x_unit = clip((x-min)/range, 0, 1)
// and delegates to the standard Beta(alpha, beta). Because of the clip, queries
// outside [min, max] return exactly the boundary value: no extrapolation.
//
// Domain policy:
//   - NaN in → NaN out.
//   - PPF/ISF with p outside [0, 1] return NaN.

package pert

import "math"

// PDF returns the density at x: BetaPDF(x_unit)/range.
// Outside [min, max] it returns the density at the nearest bound.
func (d *Dist) PDF(x float64) float64 {
	return d.unit().pdf(d.toUnit(x)) / d.rng
}

// LogPDF returns log(PDF(x)); -Inf where the density is 0.
func (d *Dist) LogPDF(x float64) float64 {
	return math.Log(d.PDF(x))
}

// CDF returns P(X <= x). It is 0 at and below min, 1 at and above max.
func (d *Dist) CDF(x float64) float64 {
	return d.unit().cdf(d.toUnit(x))
}

// LogCDF returns log(CDF(x)).
func (d *Dist) LogCDF(x float64) float64 {
	return math.Log(d.CDF(x))
}

// SF returns the survival function P(X > x) = 1 - CDF(x), evaluated on the
// upper tail directly.
func (d *Dist) SF(x float64) float64 {
	return d.unit().sf(d.toUnit(x))
}

// LogSF returns log(SF(x)) without forming 1-CDF.
func (d *Dist) LogSF(x float64) float64 {
	return d.unit().logSF(d.toUnit(x))
}

// PPF returns the quantile (inverse CDF) for p in [0, 1].
// PPF(CDF(x)) == x for x in (min, max), to numerical tolerance.
func (d *Dist) PPF(p float64) float64 {
	return d.fromUnit(d.unit().ppf(p))
}

// Quantile is an alias for PPF.
func (d *Dist) Quantile(p float64) float64 { return d.PPF(p) }

// ISF returns the inverse survival function for p in [0, 1]:
// ISF(SF(x)) == x for x in (min, max), to numerical tolerance.
func (d *Dist) ISF(p float64) float64 {
	return d.fromUnit(d.unit().isf(p))
}

// Median returns the 50% quantile; identical to PPF(0.5).
func (d *Dist) Median() float64 {
	return d.fromUnit(d.unit().median())
}

// Support returns the closed interval [min, max].
func (d *Dist) Support() (float64, float64) {
	return d.a, d.c
}
