// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/betapert/pert"
	"github.com/spf13/cobra"
)

// description is the describe result.
type description struct {
	Min    number     `json:"min" yaml:"min"`
	Mode   number     `json:"mode" yaml:"mode"`
	Max    number     `json:"max" yaml:"max"`
	Lambda number     `json:"lambda" yaml:"lambda"`
	Alpha  number     `json:"alpha" yaml:"alpha"`
	Beta   number     `json:"beta" yaml:"beta"`
	Median number     `json:"median" yaml:"median"`
	StdDev number     `json:"stddev" yaml:"stddev"`
	Stats  pert.Stats `json:"stats" yaml:"stats"`
}

func describe(d *pert.Dist) description {
	return description{
		Min:    number(d.Min()),
		Mode:   number(d.Mode()),
		Max:    number(d.Max()),
		Lambda: number(d.Lambda()),
		Alpha:  number(d.Alpha()),
		Beta:   number(d.Beta()),
		Median: number(d.Median()),
		StdDev: number(d.StdDev()),
		Stats:  d.Stats(),
	}
}

func (description) header() []string { return []string{"field", "value"} }

func (r description) rows() [][]string {
	return [][]string{
		{"min", r.Min.String()},
		{"mode", r.Mode.String()},
		{"max", r.Max.String()},
		{"lambda", r.Lambda.String()},
		{"alpha", r.Alpha.String()},
		{"beta", r.Beta.String()},
		{pert.StatMean, number(r.Stats.Mean).String()},
		{"median", r.Median.String()},
		{pert.StatVar, number(r.Stats.Var).String()},
		{"stddev", r.StdDev.String()},
		{pert.StatSkewness, number(r.Stats.Skewness).String()},
		{pert.StatKurtosis, number(r.Stats.Kurtosis).String()},
	}
}

func newDescribeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "describe",
		Aliases: []string{"d"},
		Short:   "Show shape parameters and moments",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := o.dist(cmd)
			if err != nil {
				return err
			}

			return o.render(cmd, describe(d))
		},
	}
}
