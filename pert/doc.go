// Package pert implements the Beta-PERT distribution: a bounded,
// three-point (min, most-likely, max) continuous distribution used for
// estimation under uncertainty such as task durations and cost ranges.
//
// 🚀 What is Beta-PERT?
//
//	A Beta distribution rescaled onto [min, max] whose shape parameters are
//	derived from the most-likely value and a concentration parameter λ:
//
//	  alpha = 1 + λ·(mode−min)/(max−min)
//	  beta  = 1 + λ·(max−mode)/(max−min)
//
//	Larger λ concentrates mass around the mode; smaller λ widens it.
//	The classic PERT weighting (min + 4·mode + max)/6 is λ = 4, the default.
//
// ✨ Key features:
//   - strict construction: every invariant is checked once, up front
//   - cached moments: mean, variance, skewness, kurtosis
//   - full query surface: PDF/LogPDF, CDF/LogCDF, SF/LogSF, PPF, ISF, Median
//   - central intervals by coverage (Interval) or by z-score (CI)
//   - reproducible sampling from an explicit random source
//   - Batch: one distribution per element of broadcastable parameter slices
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/betapert/pert"
//
//	d, err := pert.New(2, 5, 14, pert.WithLambda(4))
//	if err != nil {
//	  // errors.Is(err, pert.ErrInvalidParameter)
//	}
//	p90 := d.PPF(0.9)              // 90th percentile
//	lo, hi := d.Interval(0.8)      // central 80% interval
//	xs := d.Sample(1000, 42)       // reproducible draws
//
// Numerics:
//
//	The regularized incomplete Beta function and its inverse come from
//	gonum (stat/distuv, mathext). Query points are mapped onto [0, 1] and
//	clipped, so values outside [min, max] mirror the boundary exactly.
//
// Concurrency:
//
//	Dist and Batch are immutable after construction and safe for concurrent
//	use. Sampling never touches a package-global generator.
package pert
