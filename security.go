// Package lwe - Named Parameter Sets
//
// This file defines well-known plain-LWE parameter triples used as
// regression anchors and CLI presets.
//
// # Naming Convention
//
// Format: N{dimension}Q{modulus}
//
// The error width σ is part of the set but not of the name; each doc
// comment states it together with the approximate Core-SVP security.
//
// # Choosing a Set
//
// The sets are ordered from trivially breakable to out of reach. None of
// them is a deployment recommendation: they exist so that estimates can
// be compared against published attack figures at both ends of the
// security range.
//
// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause
package lwe

// DefaultSigma is the error width assumed when a parameter source does
// not carry one. 3.2 is the discrete Gaussian width conventionally used
// by RLWE-based homomorphic encryption libraries.
const DefaultSigma = 3.2

// Well-known parameter sets, weakest first
var (
	// N16Q31 is a toy set small enough to trace by hand. The attack
	// degenerates to block size 2, under one bit of security.
	N16Q31 = ParametersLiteral{N: 16, Q: 31, Sigma: 5.0}

	// N64Q127 is a teaching set with roughly 12 bits of Core-SVP
	// security (β = 40), breakable on a laptop.
	N64Q127 = ParametersLiteral{N: 64, Q: 127, Sigma: 3.0}

	// N128Q1031 offers roughly 22 bits of Core-SVP security (β = 75),
	// within reach of a determined academic effort.
	N128Q1031 = ParametersLiteral{N: 128, Q: 1031, Sigma: 5.0}

	// N256Q7681 is the classic benchmark instance with a 13-bit
	// NTT-friendly modulus, roughly 73 bits of Core-SVP security
	// (β = 250).
	N256Q7681 = ParametersLiteral{N: 256, Q: 7681, Sigma: 8.0}

	// N512Q12289 uses the 14-bit NewHope modulus at dimension 512,
	// roughly 156 bits of Core-SVP security (β = 533).
	N512Q12289 = ParametersLiteral{N: 512, Q: 12289, Sigma: 10.0}
)

// ParameterSet pairs a well-known parameter literal with its name
type ParameterSet struct {
	// Name is the parameter set identifier
	Name string
	// Params is the literal triple
	Params ParametersLiteral
}

// AllParameterSets returns every named parameter set, weakest first
func AllParameterSets() []ParameterSet {
	return []ParameterSet{
		{Name: "N16Q31", Params: N16Q31},
		{Name: "N64Q127", Params: N64Q127},
		{Name: "N128Q1031", Params: N128Q1031},
		{Name: "N256Q7681", Params: N256Q7681},
		{Name: "N512Q12289", Params: N512Q12289},
	}
}

// GetParameterSet returns the parameter set with the given name
func GetParameterSet(name string) (ParameterSet, bool) {
	for _, ps := range AllParameterSets() {
		if ps.Name == name {
			return ps, true
		}
	}
	return ParameterSet{}, false
}
