// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package lwe

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EstimateBatch estimates every literal in lits under the given cost
// model, fanning the searches out over up to GOMAXPROCS goroutines.
// Results keep the input order. The first invalid literal fails the
// whole batch.
func EstimateBatch(lits []ParametersLiteral, model CostModel) ([]SecurityEstimate, error) {
	estimates := make([]SecurityEstimate, len(lits))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, lit := range lits {
		g.Go(func() error {
			p, err := NewParametersFromLiteral(lit)
			if err != nil {
				return fmt.Errorf("set %d: %w", i, err)
			}
			estimates[i] = Estimate(p, model)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return estimates, nil
}
