// SPDX-License-Identifier: MIT

package cli

import (
	"math"

	"github.com/katalvlaran/betapert/pert"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// bounds is the interval and ci result.
type bounds struct {
	Z        *number `json:"z,omitempty" yaml:"z,omitempty"`
	Coverage number  `json:"coverage" yaml:"coverage"`
	Low      number  `json:"low" yaml:"low"`
	High     number  `json:"high" yaml:"high"`
}

func (bounds) header() []string { return []string{"coverage", "low", "high"} }

func (r bounds) rows() [][]string {
	return [][]string{{r.Coverage.String(), r.Low.String(), r.High.String()}}
}

func newIntervalCmd(o *options) *cobra.Command {
	var coverage float64

	cmd := &cobra.Command{
		Use:   "interval",
		Short: "Central interval holding a given probability mass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(coverage >= 0 && coverage <= 1) {
				return errors.Errorf("--coverage must be within [0, 1], got %v", coverage)
			}
			d, err := o.dist(cmd)
			if err != nil {
				return err
			}
			low, high := d.Interval(coverage)

			return o.render(cmd, bounds{Coverage: number(coverage), Low: number(low), High: number(high)})
		},
	}

	cmd.Flags().Float64VarP(&coverage, "coverage", "c", 0.9, "probability mass inside the interval")

	return cmd
}

func newCICmd(o *options) *cobra.Command {
	var z float64

	cmd := &cobra.Command{
		Use:   "ci",
		Short: "Central interval matching ±z normal standard deviations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(z >= 0) || math.IsInf(z, 1) {
				return errors.Errorf("--z must be a finite non-negative number, got %v", z)
			}
			d, err := o.dist(cmd)
			if err != nil {
				return err
			}
			low, high := d.CI(z)
			zz := number(z)

			return o.render(cmd, bounds{
				Z:        &zz,
				Coverage: number(pert.Coverage(z)),
				Low:      number(low),
				High:     number(high),
			})
		},
	}

	cmd.Flags().Float64Var(&z, "z", 1.96, "z-score")

	return cmd
}
