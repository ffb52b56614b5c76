// SPDX-License-Identifier: MIT

// Package config loads the pert command defaults from the environment.
//
// Every variable is optional; command-line flags override whatever is loaded
// here.
//
//	PERT_LAMBDA   concentration parameter (default 4)
//	PERT_OUTPUT   pretty | json | yaml (default pretty)
//	PERT_VERBOSE  enable debug logging (default false)
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Output formats accepted by PERT_OUTPUT and --output.
const (
	OutputPretty = "pretty"
	OutputJSON   = "json"
	OutputYAML   = "yaml"
)

// Config holds the environment-provided defaults.
type Config struct {
	Lambda  float64 `env:"PERT_LAMBDA" envDefault:"4"`
	Output  string  `env:"PERT_OUTPUT" envDefault:"pretty"`
	Verbose bool    `env:"PERT_VERBOSE" envDefault:"false"`
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := ValidateOutput(cfg.Output); err != nil {
		return Config{}, fmt.Errorf("PERT_OUTPUT: %w", err)
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// ErrUnknownOutput is returned for an output format other than pretty, json or yaml.
var ErrUnknownOutput = errors.New("config: unknown output format")

// ValidateOutput checks o names a supported output format.
func ValidateOutput(o string) error {
	switch o {
	case OutputPretty, OutputJSON, OutputYAML:
		return nil
	}

	return fmt.Errorf("%w %q", ErrUnknownOutput, o)
}
