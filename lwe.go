// Package lwe estimates the classical bit-security of plain LWE
// (Learning With Errors) parameter sets against the primal uSVP attack.
//
// An LWE parameter set is the triple (n, q, σ): secret dimension, modulus
// and error standard deviation. The attack model embeds m LWE samples into
// a lattice of dimension d = m + n and reduces it with BKZ. Estimation
// proceeds in three steps:
//   - for each sample count m, compute the largest root-Hermite factor δ₀
//     under which the reduction still exposes the embedded short vector
//   - convert δ₀ to the minimal BKZ block size β that achieves it
//   - convert β to a bit cost under a cost model (Core-SVP 0.292·β, or the
//     more aggressive sieving exponent 0.265·β)
//
// All estimates are deterministic pure functions of their inputs and safe
// for concurrent use.
//
// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause
package lwe

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/luxfi/lwe/internal/bignum"
)

// Parameter validation errors.
var (
	ErrDimension      = errors.New("lwe: n must be a positive integer")
	ErrModulus        = errors.New("lwe: q must be at least 2")
	ErrSigma          = errors.New("lwe: sigma must be positive and finite")
	ErrDimensionRange = errors.New("lwe: n exceeds the supported search range")
	ErrModulusRange   = errors.New("lwe: q exceeds the supported precision")
)

const (
	// MaxN is the largest accepted secret dimension. The sample scan is
	// linear in n, and dimensions beyond this bound have no cryptographic
	// meaning.
	MaxN = 1 << 20

	// MaxQBits is the largest accepted modulus bit length. The optimizer
	// works on ln(q) in float64, which stays accurate well past this bound.
	MaxQBits = 1 << 20
)

// ParametersLiteral is a user-friendly parameter specification
type ParametersLiteral struct {
	// N is the LWE secret dimension
	N int
	// Q is the ciphertext modulus
	Q uint64
	// QBig overrides Q for moduli that do not fit in 64 bits, such as the
	// modulus chain product of an RLWE scheme
	QBig *big.Int
	// Sigma is the standard deviation of the Gaussian error
	Sigma float64
}

// Parameters holds a validated, immutable LWE parameter set
type Parameters struct {
	n     int
	q     *big.Int
	sigma float64
	// lnQ caches ln(q); the optimizer works entirely in log space
	lnQ float64
}

// NewParametersFromLiteral creates Parameters from a literal specification
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {
	if lit.QBig != nil {
		return NewParametersBigQ(lit.N, lit.QBig, lit.Sigma)
	}
	return NewParameters(lit.N, lit.Q, lit.Sigma)
}

// NewParameters validates and freezes an (n, q, σ) triple
func NewParameters(n int, q uint64, sigma float64) (Parameters, error) {
	if err := checkDimension(n); err != nil {
		return Parameters{}, err
	}
	if q < 2 {
		return Parameters{}, fmt.Errorf("%w, got %d", ErrModulus, q)
	}
	if err := checkSigma(sigma); err != nil {
		return Parameters{}, err
	}
	return Parameters{
		n:     n,
		q:     new(big.Int).SetUint64(q),
		sigma: sigma,
		lnQ:   math.Log(float64(q)),
	}, nil
}

// NewParametersBigQ is NewParameters for arbitrary-precision moduli.
// Moduli that fit in a uint64 take the exact same code path as
// NewParameters, so both constructors agree bit for bit.
func NewParametersBigQ(n int, q *big.Int, sigma float64) (Parameters, error) {
	if q == nil || q.Cmp(big.NewInt(2)) < 0 {
		return Parameters{}, fmt.Errorf("%w, got %v", ErrModulus, q)
	}
	if q.IsUint64() {
		return NewParameters(n, q.Uint64(), sigma)
	}
	if err := checkDimension(n); err != nil {
		return Parameters{}, err
	}
	if q.BitLen() > MaxQBits {
		return Parameters{}, fmt.Errorf("%w: %d bits", ErrModulusRange, q.BitLen())
	}
	if err := checkSigma(sigma); err != nil {
		return Parameters{}, err
	}
	return Parameters{
		n:     n,
		q:     new(big.Int).Set(q),
		sigma: sigma,
		lnQ:   bignum.Ln(q),
	}, nil
}

func checkDimension(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w, got %d", ErrDimension, n)
	}
	if n > MaxN {
		return fmt.Errorf("%w: %d > %d", ErrDimensionRange, n, MaxN)
	}
	return nil
}

func checkSigma(sigma float64) error {
	if sigma <= 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return fmt.Errorf("%w, got %v", ErrSigma, sigma)
	}
	return nil
}

// N returns the LWE secret dimension
func (p Parameters) N() int {
	return p.n
}

// Q returns a copy of the ciphertext modulus
func (p Parameters) Q() *big.Int {
	return new(big.Int).Set(p.q)
}

// Sigma returns the error standard deviation
func (p Parameters) Sigma() float64 {
	return p.sigma
}

// LogQ returns the natural logarithm of the modulus
func (p Parameters) LogQ() float64 {
	return p.lnQ
}

// QBits returns the base-2 logarithm of the modulus
func (p Parameters) QBits() float64 {
	return p.lnQ / math.Ln2
}
