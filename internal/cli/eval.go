// SPDX-License-Identifier: MIT

package cli

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/betapert/pert"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// batchFunc is an elementwise Batch query.
type batchFunc func(*pert.Batch, []float64) ([]float64, error)

// functions maps eval names onto Batch queries.
var functions = map[string]batchFunc{
	"pdf":    (*pert.Batch).PDF,
	"logpdf": (*pert.Batch).LogPDF,
	"cdf":    (*pert.Batch).CDF,
	"logcdf": (*pert.Batch).LogCDF,
	"sf":     (*pert.Batch).SF,
	"logsf":  (*pert.Batch).LogSF,
	"ppf":    (*pert.Batch).PPF,
	"isf":    (*pert.Batch).ISF,
}

func functionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// point is one evaluated argument.
type point struct {
	X     number `json:"x" yaml:"x"`
	Value number `json:"value" yaml:"value"`
}

// evaluation is the eval result.
type evaluation struct {
	Function string  `json:"function" yaml:"function"`
	Points   []point `json:"points" yaml:"points"`
}

func (r evaluation) header() []string { return []string{"x", r.Function} }

func (r evaluation) rows() [][]string {
	out := make([][]string, len(r.Points))
	for i, p := range r.Points {
		out[i] = []string{p.X.String(), p.Value.String()}
	}

	return out
}

func parseFloats(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		xs[i] = x
	}

	return xs, nil
}

func newEvalCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <function> X...",
		Short: "Evaluate pdf, cdf, sf, ppf, isf or their logs at each X",
		Long: `Evaluate a distribution function at each argument.

Functions: pdf, logpdf, cdf, logcdf, sf, logsf take values;
ppf and isf take probabilities in [0, 1].
Negative arguments must follow "--".`,
		Example:   "  pert eval cdf 3 5 7 --min 1 --mode 4 --max 12",
		ValidArgs: functionNames(),
		Args:      cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := functions[args[0]]
			if !ok {
				return errors.Errorf("unknown function %q, want one of %v", args[0], functionNames())
			}
			xs, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			bt, err := o.batch(cmd)
			if err != nil {
				return err
			}

			vals, err := fn(bt, xs)
			if err != nil {
				return errors.Wrap(err, args[0])
			}
			o.log.Debug("evaluated", zap.String("function", args[0]), zap.Int("points", len(vals)))

			res := evaluation{Function: args[0], Points: make([]point, len(vals))}
			for i := range vals {
				res.Points[i] = point{X: number(xs[i]), Value: number(vals[i])}
			}

			return o.render(cmd, res)
		},
	}
}
