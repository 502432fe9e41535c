// Package bignum provides float64 logarithms of arbitrary-precision
// integers, used to bring very large moduli into the log domain.
package bignum

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// logPrec is the working precision of the log computation. A float64
// result needs 53 mantissa bits; the rest absorbs rounding of the input.
const logPrec = 128

// Ln returns the natural logarithm of x as a float64. Values that fit in
// a uint64 go through math.Log directly, so small inputs agree exactly
// with float64 arithmetic. Non-positive x yields NaN.
func Ln(x *big.Int) float64 {
	if x.Sign() <= 0 {
		return math.NaN()
	}
	if x.IsUint64() {
		return math.Log(float64(x.Uint64()))
	}
	f := new(big.Float).SetPrec(logPrec).SetInt(x)
	r, _ := bigfloat.Log(f).Float64()
	return r
}

// Log2 returns the base-2 logarithm of x as a float64
func Log2(x *big.Int) float64 {
	return Ln(x) / math.Ln2
}
