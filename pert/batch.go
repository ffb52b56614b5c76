// SPDX-License-Identifier: MIT
// Package pert: vectorized distributions.
//
// Purpose:
//   - Hold one Beta-PERT per element of broadcastable parameter slices and
//     answer queries elementwise over a fixed broadcast length.
//
// Broadcasting (1-D numpy rules):
//   - Every operand length is 1 or the common length n.
//   - Query arguments broadcast against n the same way, so a single x is
//     evaluated under every distribution and a single-element batch
//     evaluates every x.
//   - Anything else is ErrShapeMismatch.
//
// Determinism:
//   - Fixed i-order for every loop; Rand fills row-major.

package pert

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

// Operation name constants for query errors.
const (
	opPDF    = "PDF"
	opLogPDF = "LogPDF"
	opCDF    = "CDF"
	opLogCDF = "LogCDF"
	opSF     = "SF"
	opLogSF  = "LogSF"
	opPPF    = "PPF"
	opISF    = "ISF"
	opAt     = "At"
)

// Batch is a vectorized Beta-PERT: element i is the distribution built from
// (min[i], mode[i], max[i]) after broadcasting. Immutable after NewBatch.
type Batch struct {
	lambda float64
	dists  []Dist
}

// NewBatch builds one distribution per broadcast element of the parameter slices.
//
// Errors (first violated wins, all wrap ErrInvalidParameter):
// ErrNonFinite, ErrLambda, ErrShapeMismatch, ErrMinAboveMode,
// ErrModeAboveMax, ErrDegenerate. Ordering errors name the first offending
// element when the batch has more than one.
//
// Complexity: O(n).
func NewBatch(minVals, modes, maxVals []float64, opts ...Option) (*Batch, error) {
	o := gatherOptions(opts...)
	n, err := validateParams(minVals, modes, maxVals, o.lambda)
	if err != nil {
		return nil, validatorErrorf(opNewBatch, err)
	}

	dists := make([]Dist, n)
	for i := range dists {
		dists[i] = build(pick(minVals, i), pick(modes, i), pick(maxVals, i), o.lambda)
	}

	return &Batch{lambda: o.lambda, dists: dists}, nil
}

// Len returns the broadcast length.
func (bt *Batch) Len() int { return len(bt.dists) }

// Lambda returns the shared concentration parameter.
func (bt *Batch) Lambda() float64 { return bt.lambda }

// At returns a copy of element i as a standalone distribution.
func (bt *Batch) At(i int) (*Dist, error) {
	if i < 0 || i >= len(bt.dists) {
		return nil, validatorErrorf(opAt, ErrIndexOutOfRange)
	}
	d := bt.dists[i]

	return &d, nil
}

// dist returns element i under broadcasting.
func (bt *Batch) dist(i int) *Dist {
	if len(bt.dists) == 1 {
		return &bt.dists[0]
	}

	return &bt.dists[i]
}

// each evaluates f elementwise over the broadcast of the batch and xs.
func (bt *Batch) each(op string, xs []float64, f func(*Dist, float64) float64) ([]float64, error) {
	n, err := broadcastLen(len(bt.dists), len(xs))
	if err != nil {
		return nil, validatorErrorf(op, err)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = f(bt.dist(i), pick(xs, i))
	}

	return out, nil
}

// column gathers a per-element value.
func (bt *Batch) column(f func(*Dist) float64) []float64 {
	out := make([]float64, len(bt.dists))
	for i := range bt.dists {
		out[i] = f(&bt.dists[i])
	}

	return out
}

// PDF evaluates Dist.PDF elementwise.
func (bt *Batch) PDF(xs []float64) ([]float64, error) { return bt.each(opPDF, xs, (*Dist).PDF) }

// LogPDF evaluates Dist.LogPDF elementwise.
func (bt *Batch) LogPDF(xs []float64) ([]float64, error) {
	return bt.each(opLogPDF, xs, (*Dist).LogPDF)
}

// CDF evaluates Dist.CDF elementwise.
func (bt *Batch) CDF(xs []float64) ([]float64, error) { return bt.each(opCDF, xs, (*Dist).CDF) }

// LogCDF evaluates Dist.LogCDF elementwise.
func (bt *Batch) LogCDF(xs []float64) ([]float64, error) {
	return bt.each(opLogCDF, xs, (*Dist).LogCDF)
}

// SF evaluates Dist.SF elementwise.
func (bt *Batch) SF(xs []float64) ([]float64, error) { return bt.each(opSF, xs, (*Dist).SF) }

// LogSF evaluates Dist.LogSF elementwise.
func (bt *Batch) LogSF(xs []float64) ([]float64, error) { return bt.each(opLogSF, xs, (*Dist).LogSF) }

// PPF evaluates Dist.PPF elementwise.
func (bt *Batch) PPF(ps []float64) ([]float64, error) { return bt.each(opPPF, ps, (*Dist).PPF) }

// ISF evaluates Dist.ISF elementwise.
func (bt *Batch) ISF(ps []float64) ([]float64, error) { return bt.each(opISF, ps, (*Dist).ISF) }

// Median returns each element's median.
func (bt *Batch) Median() []float64 { return bt.column((*Dist).Median) }

// Min returns each element's lower bound.
func (bt *Batch) Min() []float64 { return bt.column((*Dist).Min) }

// Mode returns each element's most-likely value.
func (bt *Batch) Mode() []float64 { return bt.column((*Dist).Mode) }

// Max returns each element's upper bound.
func (bt *Batch) Max() []float64 { return bt.column((*Dist).Max) }

// Alpha returns each element's first shape parameter.
func (bt *Batch) Alpha() []float64 { return bt.column((*Dist).Alpha) }

// Beta returns each element's second shape parameter.
func (bt *Batch) Beta() []float64 { return bt.column((*Dist).Beta) }

// Mean returns each element's mean.
func (bt *Batch) Mean() []float64 { return bt.column((*Dist).Mean) }

// Variance returns each element's variance.
func (bt *Batch) Variance() []float64 { return bt.column((*Dist).Variance) }

// Stats returns each element's moment snapshot.
func (bt *Batch) Stats() []Stats {
	out := make([]Stats, len(bt.dists))
	for i := range bt.dists {
		out[i] = bt.dists[i].Stats()
	}

	return out
}

// Interval returns the per-element central intervals: low[i] <= high[i].
// Together they form the (2, n) result of a vectorized interval query.
func (bt *Batch) Interval(coverage float64) (low, high []float64) {
	low = make([]float64, len(bt.dists))
	high = make([]float64, len(bt.dists))
	for i := range bt.dists {
		low[i], high[i] = bt.dists[i].Interval(coverage)
	}

	return low, high
}

// CI returns the per-element intervals for z-score z; identical to
// Interval(Coverage(z)).
func (bt *Batch) CI(z float64) (low, high []float64) {
	return bt.Interval(coverageOf(z))
}

// Rand draws size rows of variates, one column per element: out[r][i] is a
// draw from element i. Values are filled row-major from the single source src,
// so a seeded src reproduces the whole matrix. A nil src uses a fresh
// time-seeded source.
//
// Complexity: O(size·n).
func (bt *Batch) Rand(size int, src rand.Source) [][]float64 {
	if size <= 0 {
		return [][]float64{}
	}
	if src == nil {
		src = newSource()
	}

	n := len(bt.dists)
	units := make([]func() float64, n)
	for i := range bt.dists {
		units[i] = bt.dists[i].unit().dist(src).Rand
	}

	out := make([][]float64, size)
	for r := range out {
		row := make([]float64, n)
		for i := range row {
			row[i] = bt.dists[i].fromUnit(units[i]())
		}
		out[r] = row
	}

	return out
}

// Sample draws size rows from a source seeded with seed.
func (bt *Batch) Sample(size int, seed uint64) [][]float64 {
	return bt.Rand(size, rand.NewSource(seed))
}

// String renders the batch fields as slices, e.g.
//
//	PERT(a=[0 10], b=[5 15], c=[10 20], lambda=4, alpha=[3 3], ...)
func (bt *Batch) String() string {
	var sb strings.Builder
	sb.WriteString("PERT(")
	fmt.Fprintf(&sb, "a=%v, b=%v, c=%v, lambda=%v, ", bt.Min(), bt.Mode(), bt.Max(), bt.lambda)
	fmt.Fprintf(&sb, "alpha=%v, beta=%v, ", bt.Alpha(), bt.Beta())
	fmt.Fprintf(&sb, "mean=%v, var=%v, ", bt.Mean(), bt.Variance())
	fmt.Fprintf(&sb, "skew=%v, kurt=%v)", bt.column((*Dist).Skewness), bt.column((*Dist).Kurtosis))

	return sb.String()
}
