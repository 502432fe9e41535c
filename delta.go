// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package lwe

import "math"

const (
	// betaMin is the block size where the asymptotic root-Hermite formula
	// takes over from the experimental interpolation
	betaMin = 40

	// BetaInfinite is the block size sentinel reported when no BKZ block
	// size up to 10000 reaches the required root-Hermite factor.
	BetaInfinite = 10000

	// twoPiE is 2πe, the constant of the asymptotic root-Hermite formula
	twoPiE = 17.079468445347132
)

// DeltaBKZ returns the root-Hermite factor δ₀ achieved by BKZ with block
// size beta.
//
// For beta ≥ 40 it follows the asymptotic formula
//
//	δ₀ = (β/(2πe))^(1/(2(β-1)))
//
// Below 40 the asymptotic regime has not set in, and δ₀ is a linear
// interpolation between the experimental values δ₀(2) = 1.0219 and
// δ₀(50) = 1.0126. The result is greater than 1 for every beta ≥ 2.
func DeltaBKZ(beta int) float64 {
	if beta < betaMin {
		return 1.0219 - float64(beta-2)*(1.0219-1.0126)/48.0
	}
	b := float64(beta)
	return math.Pow(b/twoPiE, 1.0/(2.0*(b-1.0)))
}

// BetaForDelta returns the BKZ block size needed to reach a root-Hermite
// factor of at most delta.
//
// Targets at or above δ₀(2) = 1.0219 are trivially reachable and return 2.
// Targets at or below 1.0 are unreachable, since δ₀ > 1 for every block
// size, and return BetaInfinite. In between, the block size is found by
// binary search over [40, BetaInfinite]; BetaInfinite is returned when no
// block size in range qualifies.
func BetaForDelta(delta float64) int {
	if delta >= 1.0219 {
		return 2
	}
	if delta <= 1.0 {
		return BetaInfinite
	}
	lo, hi := betaMin, BetaInfinite
	for lo < hi {
		mid := (lo + hi) / 2
		if DeltaBKZ(mid) <= delta {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
