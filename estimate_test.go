// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package lwe

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateKnownParameters(t *testing.T) {
	testCases := []struct {
		n        int
		q        uint64
		sigma    float64
		wantBeta int
		wantM    int
		wantD    int
		wantBits float64
	}{
		{16, 31, 5.0, 2, 8, 24, 0.584},
		{64, 127, 3.0, 40, 32, 96, 11.68},
		{128, 1031, 5.0, 75, 64, 192, 21.9},
		{256, 7681, 8.0, 250, 128, 384, 73.0},
		{512, 12289, 10.0, 533, 256, 768, 155.636},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("n%d_q%d", tc.n, tc.q), func(t *testing.T) {
			est, err := EstimateLWE(tc.n, tc.q, tc.sigma, CoreSVP)
			require.NoError(t, err)

			require.Equal(t, tc.wantBeta, est.Beta)
			require.Equal(t, tc.wantM, est.Samples)
			require.Equal(t, tc.wantD, est.Dimension)
			require.InDelta(t, tc.wantBits, est.ClassicalBits, 1e-9)
			require.False(t, est.SecureBeyondModel())
			require.Equal(t, AttackPrimalUSVP, est.Attack)
			require.Equal(t, tc.n, est.N)
			require.Equal(t, tc.sigma, est.Sigma)
		})
	}
}

func TestEstimateNoAttack(t *testing.T) {
	// A narrow error at a small modulus pushes the required block size
	// past the lattice dimension for every sample count.
	est, err := EstimateLWE(1024, 3329, 1.0, CoreSVP)
	require.NoError(t, err)

	require.True(t, est.SecureBeyondModel())
	require.Equal(t, BetaInfinite, est.Beta)
	require.Equal(t, 1024, est.Samples)
	require.Equal(t, 2048, est.Dimension)
	require.True(t, math.IsInf(est.ClassicalBits, 1))

	// A 64-bit modulus is far beyond what any block size can reach.
	est, err = EstimateLWE(256, math.MaxUint64, 8.0, CoreSVP)
	require.NoError(t, err)
	require.True(t, est.SecureBeyondModel())
}

func TestEstimateDegenerate(t *testing.T) {
	// n=1 with a wide error still admits a (trivial) attack
	est, err := EstimateLWE(1, 2, 5.0, CoreSVP)
	require.NoError(t, err)
	require.Equal(t, 2, est.Beta)
	require.Equal(t, 1, est.Samples)
	require.Equal(t, 2, est.Dimension)

	// while a narrow error does not
	est, err = EstimateLWE(1, 2, 0.5, CoreSVP)
	require.NoError(t, err)
	require.True(t, est.SecureBeyondModel())

	// an absurdly wide error degenerates to block size 2
	est, err = EstimateLWE(256, 7681, 1e300, CoreSVP)
	require.NoError(t, err)
	require.Equal(t, 2, est.Beta)

	// and an absurdly narrow one kills every configuration
	est, err = EstimateLWE(256, 7681, 1e-300, CoreSVP)
	require.NoError(t, err)
	require.True(t, est.SecureBeyondModel())
}

func TestEstimateSievingModel(t *testing.T) {
	// The block size search is model independent; only the pricing moves.
	core, err := EstimateLWE(256, 7681, 8.0, CoreSVP)
	require.NoError(t, err)
	sieve, err := EstimateLWE(256, 7681, 8.0, Sieving)
	require.NoError(t, err)

	require.Equal(t, core.Beta, sieve.Beta)
	require.Equal(t, core.Samples, sieve.Samples)
	require.InDelta(t, 66.25, sieve.ClassicalBits, 1e-9)
	require.Less(t, sieve.ClassicalBits, core.ClassicalBits)
	require.Equal(t, "sieving", sieve.Model.Name)
}

func TestEstimateString(t *testing.T) {
	est, err := EstimateLWE(256, 7681, 8.0, CoreSVP)
	require.NoError(t, err)
	require.Equal(t,
		"LWE(n=256, q≈2^13, σ=8): ~73 bits (primal_usvp, β=250)",
		est.String())

	est, err = EstimateLWE(1024, 3329, 1.0, CoreSVP)
	require.NoError(t, err)
	require.Equal(t,
		"LWE(n=1024, q≈2^12, σ=1): No lattice attack found",
		est.String())

	est, err = EstimateLWE(1, 2, 0.5, CoreSVP)
	require.NoError(t, err)
	require.Equal(t,
		"LWE(n=1, q≈2^1, σ=0.5): No lattice attack found",
		est.String())
}

func TestEstimateJSON(t *testing.T) {
	est, err := EstimateLWE(256, 7681, 8.0, CoreSVP)
	require.NoError(t, err)

	data, err := json.Marshal(est)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.InDelta(t, 73.0, decoded["classical_bits"], 1e-9)
	require.EqualValues(t, 250, decoded["beta"])
	require.EqualValues(t, 384, decoded["d"])
	require.EqualValues(t, 128, decoded["m"])
	require.Equal(t, "primal_usvp", decoded["attack"])
	require.Equal(t, "core-svp", decoded["model"])
	require.EqualValues(t, 256, decoded["n"])
}

func TestEstimateJSONNoAttack(t *testing.T) {
	// +Inf has no JSON representation; the bit cost becomes null
	est, err := EstimateLWE(1024, 3329, 1.0, CoreSVP)
	require.NoError(t, err)

	data, err := json.Marshal(est)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Contains(t, decoded, "classical_bits")
	require.Nil(t, decoded["classical_bits"])
	require.EqualValues(t, BetaInfinite, decoded["beta"])
}

func TestCostModels(t *testing.T) {
	require.Equal(t, "core-svp", CoreSVP.Name)
	require.Equal(t, 0.292, CoreSVP.Coeff)
	require.Equal(t, "sieving", Sieving.Name)
	require.Equal(t, 0.265, Sieving.Coeff)

	require.InDelta(t, 73.0, CoreSVP.Cost(250), 1e-9)
	require.InDelta(t, 0.584, CoreSVP.Cost(2), 1e-9)

	// Degenerate block sizes cost nothing
	require.Equal(t, 0.0, CoreSVP.Cost(1))
	require.Equal(t, 0.0, CoreSVP.Cost(0))
	require.Equal(t, 0.0, CoreSVP.Cost(-7))

	// The sentinel and beyond cost everything
	require.True(t, math.IsInf(CoreSVP.Cost(BetaInfinite), 1))
	require.True(t, math.IsInf(Sieving.Cost(BetaInfinite+1), 1))
}
