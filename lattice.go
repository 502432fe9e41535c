// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package lwe

import (
	"math/big"

	"github.com/luxfi/lattice/v7/core/rlwe"
)

// EstimateRLWE estimates the security of an RLWE parameter set against
// the primal uSVP attack on its underlying plain LWE instance: the ring
// dimension becomes the secret dimension and the modulus is the product
// of the full modulus chain. A sigma of 0 selects DefaultSigma.
//
// Ring structure is ignored, which is the standard conservative reading:
// no known attack exploits it.
func EstimateRLWE(rp rlwe.Parameters, sigma float64, model CostModel) (SecurityEstimate, error) {
	if sigma == 0 {
		sigma = DefaultSigma
	}
	q := new(big.Int).SetUint64(1)
	for _, qi := range rp.Q() {
		q.Mul(q, new(big.Int).SetUint64(qi))
	}
	p, err := NewParametersBigQ(rp.N(), q, sigma)
	if err != nil {
		return SecurityEstimate{}, err
	}
	return Estimate(p, model), nil
}
