// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/urfave/cli/v2"

	"github.com/luxfi/lwe"
)

func sweepCommand() *cli.Command {
	return &cli.Command{
		Name:      "sweep",
		Usage:     "estimate a range of dimensions at a fixed modulus and noise width",
		ArgsUsage: "<q> <sigma>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "from", Value: 128, Usage: "first dimension"},
			&cli.IntFlag{Name: "to", Value: 1024, Usage: "last dimension, inclusive"},
			&cli.IntFlag{Name: "step", Value: 64, Usage: "dimension increment"},
		},
		Action: sweepAction,
	}
}

func sweepAction(c *cli.Context) error {
	log := newLogger(c.Bool("verbose"))

	if c.NArg() != 2 {
		return fmt.Errorf("expected <q> <sigma>, got %d argument(s)", c.NArg())
	}
	q, err := parseModulus(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid modulus %q: %w", c.Args().Get(0), err)
	}
	sigma, err := strconv.ParseFloat(c.Args().Get(1), 64)
	if err != nil {
		return fmt.Errorf("invalid sigma %q: %w", c.Args().Get(1), err)
	}

	from, to, step := c.Int("from"), c.Int("to"), c.Int("step")
	if from <= 0 || to < from || step <= 0 {
		return fmt.Errorf("invalid sweep range [%d, %d] with step %d", from, to, step)
	}

	var lits []lwe.ParametersLiteral
	for n := from; n <= to; n += step {
		lits = append(lits, lwe.ParametersLiteral{N: n, QBig: q, Sigma: sigma})
	}

	start := time.Now()
	estimates, err := lwe.EstimateBatch(lits, costModel(c))
	if err != nil {
		return err
	}
	log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("points", len(estimates)).
		Msg("sweep finished")

	fmt.Printf("%6s %8s %8s %8s\n", "n", "beta", "d", "bits")
	var bits []float64
	unreachable := 0
	for _, est := range estimates {
		if est.SecureBeyondModel() {
			unreachable++
			fmt.Printf("%6d %8s %8s %8s\n", est.N, "-", "-", "-")
			continue
		}
		bits = append(bits, est.ClassicalBits)
		fmt.Printf("%6d %8d %8d %8.1f\n", est.N, est.Beta, est.Dimension, est.ClassicalBits)
	}

	if unreachable > 0 {
		fmt.Printf("\nno lattice attack found for %d of %d dimensions\n", unreachable, len(estimates))
	}
	if len(bits) > 0 {
		minBits, _ := stats.Min(bits)
		medianBits, _ := stats.Median(bits)
		maxBits, _ := stats.Max(bits)
		fmt.Printf("bits: min %.1f, median %.1f, max %.1f\n", minBits, medianBits, maxBits)
	}
	return nil
}

func presetsCommand() *cli.Command {
	return &cli.Command{
		Name:   "presets",
		Usage:  "estimate the named well-known parameter sets",
		Action: presetsAction,
	}
}

func presetsAction(c *cli.Context) error {
	sets := lwe.AllParameterSets()
	lits := make([]lwe.ParametersLiteral, len(sets))
	for i, ps := range sets {
		lits[i] = ps.Params
	}

	estimates, err := lwe.EstimateBatch(lits, costModel(c))
	if err != nil {
		return err
	}

	for i, ps := range sets {
		fmt.Printf("%-12s %s\n", ps.Name, estimates[i])
	}
	return nil
}
