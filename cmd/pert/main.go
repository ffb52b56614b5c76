// SPDX-License-Identifier: MIT

// Command pert evaluates Beta-PERT distributions from the command line.
//
//	pert describe --min 2 --mode 5 --max 14
//	pert eval cdf 6 8 10 --min 2 --mode 5 --max 14
//	pert sample -n 5 --seed 42 --min 2 --mode 5 --max 14 -o json
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/betapert/internal/cli"
	"github.com/katalvlaran/betapert/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cli.NewRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
