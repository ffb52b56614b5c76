// Package betapert is a toolkit for three-point estimation with the
// Beta-PERT distribution: task durations, cost ranges, risk registers.
//
// 🚀 What is betapert?
//
//	A small, dependency-light module that brings together:
//		• pert/         : the distribution itself, scalar (Dist) and vectorized (Batch)
//		• cmd/pert      : a command-line calculator over the same API
//		• internal/cli  : cobra commands and pretty/json/yaml rendering
//		• internal/config: PERT_* environment defaults
//		• examples/     : a runnable schedule-risk simulation
//
// ✨ Why Beta-PERT?
//
//   - Bounded: every value lies in [min, max], unlike a normal approximation
//   - Intuitive: parameterized by the estimates people actually give
//   - Tunable: λ trades confidence in the mode against spread
//
// Quick example:
//
//	d, _ := pert.New(2, 5, 14)     // optimistic, most likely, pessimistic
//	d.Mean()                       // (2 + 4·5 + 14)/6 = 6
//	lo, hi := d.Interval(0.9)      // central 90% interval
//
//	go get github.com/katalvlaran/betapert/pert
package betapert
