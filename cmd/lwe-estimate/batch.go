// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/luxfi/lwe"
)

// batchFile is the YAML document consumed by the batch command:
//
//	sets:
//	  - name: classic
//	    n: 256
//	    q: 7681
//	    sigma: 8.0
//	  - name: wide
//	    n: 1024
//	    q: 2**30
//	    sigma: 3.2
type batchFile struct {
	Sets []batchEntry `yaml:"sets"`
}

type batchEntry struct {
	Name  string        `yaml:"name"`
	N     int           `yaml:"n"`
	Q     modulusString `yaml:"q"`
	Sigma float64       `yaml:"sigma"`
}

// modulusString keeps the raw scalar text of the modulus so that both
// bare integers and power expressions decode the same way.
type modulusString string

func (m *modulusString) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("modulus must be a scalar")
	}
	*m = modulusString(value.Value)
	return nil
}

// loadBatch reads a batch document and converts its entries into
// parameter literals, keeping the entry names for reporting.
func loadBatch(path string) ([]string, []lwe.ParametersLiteral, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read batch file: %w", err)
	}

	var doc batchFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse batch file: %w", err)
	}
	if len(doc.Sets) == 0 {
		return nil, nil, fmt.Errorf("batch file %s contains no parameter sets", path)
	}

	names := make([]string, len(doc.Sets))
	lits := make([]lwe.ParametersLiteral, len(doc.Sets))
	for i, e := range doc.Sets {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("set-%d", i)
		}
		q, err := parseModulus(string(e.Q))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: invalid modulus %q: %w", name, e.Q, err)
		}
		lit := lwe.ParametersLiteral{N: e.N, QBig: q, Sigma: e.Sigma}
		if _, err := lwe.NewParametersFromLiteral(lit); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
		names[i] = name
		lits[i] = lit
	}
	return names, lits, nil
}

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "estimate every parameter set in a YAML file",
		ArgsUsage: "<file.yaml>",
		Action:    batchAction,
	}
}

func batchAction(c *cli.Context) error {
	log := newLogger(c.Bool("verbose"))

	if c.NArg() != 1 {
		return fmt.Errorf("expected <file.yaml>, got %d argument(s)", c.NArg())
	}

	names, lits, err := loadBatch(c.Args().Get(0))
	if err != nil {
		return err
	}

	start := time.Now()
	estimates, err := lwe.EstimateBatch(lits, costModel(c))
	if err != nil {
		return err
	}
	log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("sets", len(estimates)).
		Msg("batch finished")

	if c.Bool("json") {
		return reportBatchJSON(names, estimates)
	}
	for i, est := range estimates {
		fmt.Printf("%-16s %s\n", names[i], est)
	}
	return nil
}

// batchResult pairs an entry name with its estimate for JSON output.
type batchResult struct {
	Name     string               `json:"name"`
	Estimate lwe.SecurityEstimate `json:"estimate"`
}

func reportBatchJSON(names []string, estimates []lwe.SecurityEstimate) error {
	out := make([]batchResult, len(estimates))
	for i := range estimates {
		out[i] = batchResult{Name: names[i], Estimate: estimates[i]}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
