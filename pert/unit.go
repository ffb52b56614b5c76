// SPDX-License-Identifier: MIT

package pert

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// unitBeta is the standard Beta(alpha, beta) on [0, 1] that every Dist
// query is delegated to. Arguments outside the library's domain return NaN
// instead of reaching the gonum panics.
type unitBeta struct {
	alpha, beta float64
}

// dist returns the gonum distribution, drawing variates from src.
func (u unitBeta) dist(src rand.Source) distuv.Beta {
	return distuv.Beta{Alpha: u.alpha, Beta: u.beta, Src: src}
}

func (u unitBeta) pdf(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}

	return u.dist(nil).Prob(x)
}

func (u unitBeta) cdf(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}

	return u.dist(nil).CDF(x)
}

// sf evaluates I_{1-x}(beta, alpha) directly, so the upper tail keeps full
// relative precision instead of suffering 1-CDF cancellation.
func (u unitBeta) sf(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}

	return u.dist(nil).Survival(x)
}

// logSF is the log of the complementary incomplete Beta. gonum has no
// dedicated log-survival for Beta; taking the log of the directly evaluated
// upper tail preserves precision where 1-CDF would round to 0.
func (u unitBeta) logSF(x float64) float64 {
	return math.Log(u.sf(x))
}

func (u unitBeta) ppf(p float64) float64 {
	if !isProb(p) {
		return math.NaN()
	}

	return u.dist(nil).Quantile(p)
}

// isf inverts the upper tail through the reflection
// I_x(a, b) = 1 - I_{1-x}(b, a), which avoids forming 1-p.
func (u unitBeta) isf(p float64) float64 {
	if !isProb(p) {
		return math.NaN()
	}

	return 1 - mathext.InvRegIncBeta(u.beta, u.alpha, p)
}

func (u unitBeta) median() float64 {
	return u.ppf(0.5)
}

// interval returns the equal-tailed interval holding coverage of the mass.
func (u unitBeta) interval(coverage float64) (float64, float64) {
	if !isProb(coverage) {
		return math.NaN(), math.NaN()
	}

	return u.ppf((1 - coverage) / 2), u.ppf((1 + coverage) / 2)
}

// isProb reports p in [0, 1]; NaN is rejected.
func isProb(p float64) bool {
	return p >= 0 && p <= 1
}

// coverageOf converts a z-score into the mass of the central interval
// [-z, z] under the standard normal.
func coverageOf(z float64) float64 {
	return distuv.UnitNormal.CDF(z) - distuv.UnitNormal.CDF(-z)
}
