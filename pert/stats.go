// SPDX-License-Identifier: MIT

package pert

// Keys of the moment snapshot, shared by Stats.Map and the serialized forms.
const (
	StatMean     = "mean"
	StatVar      = "var"
	StatSkewness = "skewness"
	StatKurtosis = "kurtosis"
)

// Stats is a read-only snapshot of the moments cached at construction.
type Stats struct {
	Mean     float64 `json:"mean" yaml:"mean"`
	Var      float64 `json:"var" yaml:"var"`
	Skewness float64 `json:"skewness" yaml:"skewness"`
	Kurtosis float64 `json:"kurtosis" yaml:"kurtosis"`
}

// Map returns the moments keyed by StatMean, StatVar, StatSkewness, StatKurtosis.
// The map is freshly allocated; mutating it does not affect the distribution.
func (s Stats) Map() map[string]float64 {
	return map[string]float64{
		StatMean:     s.Mean,
		StatVar:      s.Var,
		StatSkewness: s.Skewness,
		StatKurtosis: s.Kurtosis,
	}
}
