// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

// Command lwe-estimate reports the bit-security of LWE parameter triples
// against the primal uSVP lattice attack.
//
// Usage:
//
//	lwe-estimate [-v] [--sieving] [--json] <n> <q> <sigma>
//	lwe-estimate sweep --from 128 --to 1024 --step 64 <q> <sigma>
//	lwe-estimate batch jobs.yaml
//	lwe-estimate presets
//
// The modulus accepts a plain integer or a power expression such as 2**13.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/luxfi/lwe"
)

// version is filled in at build time via -ldflags
var version = "DEV"

func main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}

	app := &cli.App{
		Name:      "lwe-estimate",
		Usage:     "estimate the bit-security of LWE parameters against the primal uSVP attack",
		ArgsUsage: "<n> <q> <sigma>",
		Version:   version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print the attack breakdown and search timings",
			},
			&cli.BoolFlag{
				Name:  "sieving",
				Usage: "price BKZ with the sieving exponent 0.265 instead of Core-SVP 0.292",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "emit estimates as JSON",
			},
		},
		Action: estimateAction,
		Commands: []*cli.Command{
			sweepCommand(),
			batchCommand(),
			presetsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		newLogger(false).Error().Msg(err.Error())
		os.Exit(1)
	}
}

// newLogger builds a console logger on stderr, leaving stdout to the
// estimates themselves.
func newLogger(verbose bool) *zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{
		Out:        colorable.NewColorable(os.Stderr),
		NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
		TimeFormat: time.RFC3339,
	}
	log := zerolog.New(writer).With().Timestamp().Logger().Level(level)
	return &log
}

// costModel picks the cost model selected by the global flags.
func costModel(c *cli.Context) lwe.CostModel {
	if c.Bool("sieving") {
		return lwe.Sieving
	}
	return lwe.CoreSVP
}

func estimateAction(c *cli.Context) error {
	log := newLogger(c.Bool("verbose"))

	if c.NArg() != 3 {
		_ = cli.ShowAppHelp(c)
		return fmt.Errorf("expected <n> <q> <sigma>, got %d argument(s)", c.NArg())
	}

	n, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid dimension %q: %w", c.Args().Get(0), err)
	}
	q, err := parseModulus(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid modulus %q: %w", c.Args().Get(1), err)
	}
	sigma, err := strconv.ParseFloat(c.Args().Get(2), 64)
	if err != nil {
		return fmt.Errorf("invalid sigma %q: %w", c.Args().Get(2), err)
	}

	params, err := lwe.NewParametersBigQ(n, q, sigma)
	if err != nil {
		return err
	}

	start := time.Now()
	est := lwe.Estimate(params, costModel(c))
	log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("beta", est.Beta).
		Int("samples", est.Samples).
		Msg("attack search finished")

	return report(c, est)
}

// report prints a single estimate to stdout in the selected output format.
func report(c *cli.Context, est lwe.SecurityEstimate) error {
	if c.Bool("json") {
		data, err := json.MarshalIndent(est, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	if c.Bool("verbose") {
		printBreakdown(est)
	}
	fmt.Println(est)
	return nil
}

// printBreakdown renders the intermediate attack quantities that the
// one-line report leaves out.
func printBreakdown(est lwe.SecurityEstimate) {
	fmt.Println("Parameters:")
	fmt.Printf("  n     = %d\n", est.N)
	fmt.Printf("  q     ≈ 2^%.1f\n", est.QBits)
	fmt.Printf("  sigma = %v\n", est.Sigma)
	fmt.Println()
	fmt.Printf("Attack: %s\n", est.Attack)
	if est.SecureBeyondModel() {
		fmt.Printf("  no working configuration up to block size %d\n", lwe.BetaInfinite)
	} else {
		fmt.Printf("  block size beta    = %d\n", est.Beta)
		fmt.Printf("  lattice dimension  = %d\n", est.Dimension)
		fmt.Printf("  samples used       = %d\n", est.Samples)
		fmt.Printf("  root-Hermite delta = %.6f\n", lwe.DeltaBKZ(est.Beta))
	}
	fmt.Println()
	fmt.Printf("Cost model: %s (%.3f bits per unit of block size)\n", est.Model.Name, est.Model.Coeff)
	fmt.Println()
}
