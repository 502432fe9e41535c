// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/luxfi/lwe"
)

// parseModulus parses a modulus written either as a plain decimal integer
// or as a power expression base**exponent (base^exponent also works).
func parseModulus(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)

	sep := "**"
	idx := strings.Index(s, sep)
	if idx < 0 {
		sep = "^"
		idx = strings.Index(s, sep)
	}
	if idx < 0 {
		q, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("not an integer: %q", s)
		}
		return q, nil
	}

	baseStr := strings.TrimSpace(s[:idx])
	expStr := strings.TrimSpace(s[idx+len(sep):])

	base, ok := new(big.Int).SetString(baseStr, 10)
	if !ok {
		return nil, fmt.Errorf("invalid base: %q", baseStr)
	}
	exp, err := strconv.ParseUint(expStr, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid exponent %q: %v", expStr, err)
	}

	// Bound the result size before materializing it. base^exp needs at
	// least exp*(bitlen-1) bits, so anything past that bound can only
	// fail the modulus range check anyway.
	if bl := uint64(base.BitLen()); bl > 1 && exp*(bl-1) > lwe.MaxQBits {
		return nil, fmt.Errorf("%s exceeds %d bits", s, lwe.MaxQBits)
	}

	return new(big.Int).Exp(base, new(big.Int).SetUint64(exp), nil), nil
}
