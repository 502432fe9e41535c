// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package lwe

import "math"

// CostModel converts a BKZ block size into an attack cost in bits. The
// cost of BKZ-β is dominated by its SVP oracle in dimension β, whose
// classical running time is 2^(c·β) for a model-dependent constant c.
type CostModel struct {
	// Name identifies the model in rendered output
	Name string
	// Coeff is the per-block-size bit cost c
	Coeff float64
}

// Supported cost models.
var (
	// CoreSVP is the conservative classical Core-SVP model, 2^(0.292·β).
	CoreSVP = CostModel{Name: "core-svp", Coeff: 0.292}

	// Sieving is the aggressive sieving model, 2^(0.265·β). The same
	// exponent is the published quantum Core-SVP coefficient, so this
	// model doubles as a rough quantum floor.
	Sieving = CostModel{Name: "sieving", Coeff: 0.265}
)

// Cost returns the bit cost of running BKZ with block size beta under the
// model. Degenerate block sizes below 2 cost nothing, and BetaInfinite or
// beyond costs infinitely much.
func (m CostModel) Cost(beta int) float64 {
	if beta < 2 {
		return 0
	}
	if beta >= BetaInfinite {
		return math.Inf(1)
	}
	return m.Coeff * float64(beta)
}
