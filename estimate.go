// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package lwe

import (
	"encoding/json"
	"fmt"
	"math"
)

// AttackPrimalUSVP names the attack model underlying every estimate.
const AttackPrimalUSVP = "primal_usvp"

// SecurityEstimate is the outcome of a security estimation
type SecurityEstimate struct {
	// ClassicalBits is the estimated attack cost in bits, +Inf when no
	// attack configuration was found
	ClassicalBits float64
	// Beta is the minimal BKZ block size over all attack configurations,
	// BetaInfinite when no configuration was found
	Beta int
	// Dimension is the embedding lattice dimension d = m + n
	Dimension int
	// Samples is the number of LWE samples m used by the attack
	Samples int
	// Attack names the attack model
	Attack string
	// Model is the cost model the bits were priced under
	Model CostModel

	// Echoed input parameters
	N     int
	QBits float64
	Sigma float64
}

// Estimate runs the primal uSVP attack search against p and prices the
// result under the given cost model.
func Estimate(p Parameters, model CostModel) SecurityEstimate {
	attack := primalUSVP(p)
	return SecurityEstimate{
		ClassicalBits: model.Cost(attack.beta),
		Beta:          attack.beta,
		Dimension:     attack.d,
		Samples:       attack.m,
		Attack:        AttackPrimalUSVP,
		Model:         model,
		N:             p.n,
		QBits:         p.QBits(),
		Sigma:         p.sigma,
	}
}

// EstimateLWE validates an (n, q, σ) triple and estimates its security
func EstimateLWE(n int, q uint64, sigma float64, model CostModel) (SecurityEstimate, error) {
	p, err := NewParameters(n, q, sigma)
	if err != nil {
		return SecurityEstimate{}, err
	}
	return Estimate(p, model), nil
}

// SecureBeyondModel reports whether the search found no working attack
// configuration at all, meaning the parameters sit outside the range the
// block size model can price.
func (e SecurityEstimate) SecureBeyondModel() bool {
	return e.Beta >= BetaInfinite
}

// String renders the estimate as a single-line report
func (e SecurityEstimate) String() string {
	if e.SecureBeyondModel() {
		return fmt.Sprintf("LWE(n=%d, q≈2^%.0f, σ=%v): No lattice attack found",
			e.N, e.QBits, e.Sigma)
	}
	return fmt.Sprintf("LWE(n=%d, q≈2^%.0f, σ=%v): ~%.0f bits (%s, β=%d)",
		e.N, e.QBits, e.Sigma, e.ClassicalBits, e.Attack, e.Beta)
}

// MarshalJSON renders infinite bit costs as null, which encoding/json has
// no native representation for.
func (e SecurityEstimate) MarshalJSON() ([]byte, error) {
	out := struct {
		ClassicalBits *float64 `json:"classical_bits"`
		Beta          int      `json:"beta"`
		Dimension     int      `json:"d"`
		Samples       int      `json:"m"`
		Attack        string   `json:"attack"`
		Model         string   `json:"model"`
		N             int      `json:"n"`
		QBits         float64  `json:"q_bits"`
		Sigma         float64  `json:"sigma"`
	}{
		Beta:      e.Beta,
		Dimension: e.Dimension,
		Samples:   e.Samples,
		Attack:    e.Attack,
		Model:     e.Model.Name,
		N:         e.N,
		QBits:     e.QBits,
		Sigma:     e.Sigma,
	}
	if !math.IsInf(e.ClassicalBits, 0) {
		out.ClassicalBits = &e.ClassicalBits
	}
	return json.Marshal(out)
}
