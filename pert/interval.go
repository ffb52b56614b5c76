// SPDX-License-Identifier: MIT

package pert

// Interval returns the central interval holding coverage of the probability
// mass, with equal mass (1-coverage)/2 left out in each tail.
//
// Guarantees low <= high and both within [min, max]. A coverage outside
// [0, 1] yields (NaN, NaN).
//
// Example:
//
//	lo, hi := d.Interval(0.9) // 5th and 95th percentiles
func (d *Dist) Interval(coverage float64) (low, high float64) {
	lu, hu := d.unit().interval(coverage)

	return d.fromUnit(lu), d.fromUnit(hu)
}

// CI returns the central interval whose coverage matches ±z standard
// deviations of a normal distribution: coverage = Φ(z) - Φ(-z).
// The result is identical to Interval called with that coverage.
//
// Example:
//
//	lo, hi := d.CI(1.96) // ≈ 95% interval
func (d *Dist) CI(z float64) (low, high float64) {
	return d.Interval(coverageOf(z))
}

// Coverage returns Φ(z) - Φ(-z), the coverage CI uses for z.
func Coverage(z float64) float64 {
	return coverageOf(z)
}
