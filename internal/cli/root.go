// SPDX-License-Identifier: MIT

// Package cli implements the pert command: a Beta-PERT calculator over a
// three-point estimate given as --min, --mode and --max.
package cli

import (
	"github.com/katalvlaran/betapert/internal/config"
	"github.com/katalvlaran/betapert/pert"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options is the state shared by the root command and its subcommands.
type options struct {
	min, mode, max float64
	lambda         float64
	output         string
	verbose        bool

	log *zap.Logger
}

// NewRootCmd builds the pert command tree. cfg supplies the defaults for
// --lambda, --output and --verbose.
func NewRootCmd(cfg config.Config) *cobra.Command {
	o := &options{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "pert",
		Short: "Beta-PERT distribution calculator",
		Long: `Evaluate a Beta-PERT distribution built from a three-point estimate.

Every subcommand needs --min, --mode and --max (min < mode < max).
Defaults for --lambda, --output and --verbose are read from PERT_LAMBDA,
PERT_OUTPUT and PERT_VERBOSE.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ValidateOutput(o.output); err != nil {
				return errors.Wrap(err, "--output")
			}
			o.log = newLogger(cmd.ErrOrStderr(), o.verbose)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = o.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	f := cmd.PersistentFlags()
	f.Float64Var(&o.min, "min", 0, "lower bound of the estimate")
	f.Float64Var(&o.mode, "mode", 0, "most-likely value")
	f.Float64Var(&o.max, "max", 0, "upper bound of the estimate")
	f.Float64Var(&o.lambda, "lambda", cfg.Lambda, "concentration parameter, > 0")
	f.StringVarP(&o.output, "output", "o", cfg.Output, "output format: pretty|json|yaml")
	f.BoolVarP(&o.verbose, "verbose", "v", cfg.Verbose, "show debug messages")

	cmd.AddCommand(
		newDescribeCmd(o),
		newEvalCmd(o),
		newSampleCmd(o),
		newIntervalCmd(o),
		newCICmd(o),
	)

	return cmd
}

// requireBounds fails unless --min, --mode and --max were all given.
func requireBounds(cmd *cobra.Command) error {
	for _, name := range []string{"min", "mode", "max"} {
		if f := cmd.Flag(name); f == nil || !f.Changed {
			return errors.Errorf("required flag --%s not set", name)
		}
	}

	return nil
}

// dist builds the distribution named by the persistent flags.
func (o *options) dist(cmd *cobra.Command) (*pert.Dist, error) {
	if err := requireBounds(cmd); err != nil {
		return nil, err
	}
	d, err := pert.New(o.min, o.mode, o.max, pert.WithLambda(o.lambda))
	if err != nil {
		return nil, errors.Wrap(err, "build distribution")
	}
	o.log.Debug("distribution built", zap.Stringer("dist", d))

	return d, nil
}

// batch builds the flag distribution as a single-element Batch so a list of
// query points broadcasts against it.
func (o *options) batch(cmd *cobra.Command) (*pert.Batch, error) {
	if err := requireBounds(cmd); err != nil {
		return nil, err
	}
	bt, err := pert.NewBatch([]float64{o.min}, []float64{o.mode}, []float64{o.max}, pert.WithLambda(o.lambda))
	if err != nil {
		return nil, errors.Wrap(err, "build distribution")
	}
	o.log.Debug("distribution built", zap.Stringer("batch", bt))

	return bt, nil
}

// render writes obj in the selected output format.
func (o *options) render(cmd *cobra.Command, obj tabular) error {
	return render(cmd.OutOrStdout(), o.output, obj)
}
