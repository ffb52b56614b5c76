// SPDX-License-Identifier: MIT
package pert_test

import (
	"testing"

	"github.com/katalvlaran/betapert/pert"
	"github.com/stretchr/testify/require"
)

// Tolerances shared across tests.
const (
	epsTight     = 1e-12 // closed-form identities
	epsRoundTrip = 1e-10 // ppf∘cdf, isf∘sf
)

// mustNew builds a distribution or fails the test immediately.
func mustNew(t testing.TB, a, b, c float64, opts ...pert.Option) *pert.Dist {
	t.Helper()
	d, err := pert.New(a, b, c, opts...)
	require.NoError(t, err)
	require.NotNil(t, d)

	return d
}

// symmetric is the reference case min=0, mode=5, max=10, λ=4 (alpha=beta=3).
func symmetric(t testing.TB) *pert.Dist {
	t.Helper()

	return mustNew(t, 0, 5, 10)
}

// skewed is min=0, mode=2, max=10, λ=4 (alpha=1.8, beta=4.2, mean=3, var=3).
func skewed(t testing.TB) *pert.Dist {
	t.Helper()

	return mustNew(t, 0, 2, 10)
}

// interior returns points strictly inside (0, 10).
func interior() []float64 {
	return []float64{1, 3, 5, 7, 9}
}

// linspace returns num values spaced evenly between lo and hi, inclusive.
func linspace(lo, hi float64, num int) []float64 {
	res := make([]float64, num)
	for i := 0; i < num; i++ {
		res[i] = lo + float64(i)*(hi-lo)/float64(num-1)
	}

	return res
}
