// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package lwe

import "math"

// attackParams is the outcome of the primal uSVP search: the cheapest BKZ
// block size found and the lattice shape achieving it.
type attackParams struct {
	beta int
	m    int // samples used by the attack
	d    int // embedding lattice dimension, m + n
}

// primalUSVP scans the number of samples m for the attack configuration
// minimizing the BKZ block size.
//
// For a given m the attacker reduces an embedding lattice of dimension
// d = m + n and volume q^m. The embedded error vector of norm ≈ σ·√d is
// exposed whenever the root-Hermite factor of the reduction satisfies
//
//	ln δ₀ ≤ (ln σ + ½·ln d − (m/d)·ln q) / d
//
// Sample counts whose bound is non-positive cannot succeed for any block
// size and are skipped, as are configurations whose required block size
// exceeds the lattice dimension. When every m in [max(n/2, 1), 8n) is
// skipped, the sentinel configuration (BetaInfinite, n, 2n) is returned.
func primalUSVP(p Parameters) attackParams {
	n := p.n
	best := attackParams{beta: BetaInfinite, m: n, d: 2 * n}

	lnSigma := math.Log(p.sigma)

	mStart := n / 2
	if mStart < 1 {
		mStart = 1
	}
	for m := mStart; m < 8*n; m++ {
		d := m + n
		df := float64(d)
		logDeltaMax := (lnSigma + 0.5*math.Log(df) - float64(m)/df*p.lnQ) / df
		if logDeltaMax <= 0 {
			continue
		}
		beta := BetaForDelta(math.Exp(logDeltaMax))
		if beta > d {
			continue
		}
		if beta < best.beta {
			best = attackParams{beta: beta, m: m, d: d}
		}
	}
	return best
}
