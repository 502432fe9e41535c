// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/lwe"
)

func TestParseModulus(t *testing.T) {
	testCases := []struct {
		in   string
		want *big.Int
	}{
		{"7681", big.NewInt(7681)},
		{"2**13", big.NewInt(8192)},
		{"2^13", big.NewInt(8192)},
		{"3**5", big.NewInt(243)},
		{" 2 ** 13 ", big.NewInt(8192)},
		{"2**70", new(big.Int).Lsh(big.NewInt(1), 70)},
		{"10**30", new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseModulus(tc.in)
			require.NoError(t, err)
			require.Zero(t, got.Cmp(tc.want), "got %v, want %v", got, tc.want)
		})
	}
}

func TestParseModulusErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"abc",
		"12.5",
		"2**abc",
		"**5",
		"2^",
		"2**-3",
		"2**2000000", // past the modulus bit bound
	} {
		t.Run(in, func(t *testing.T) {
			_, err := parseModulus(in)
			require.Error(t, err)
		})
	}
}

func writeBatchFile(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestLoadBatch(t *testing.T) {
	path := writeBatchFile(t, `sets:
  - name: classic
    n: 256
    q: 7681
    sigma: 8.0
  - name: wide-modulus
    n: 512
    q: "2**30"
    sigma: 3.2
`)

	names, lits, err := loadBatch(path)
	require.NoError(t, err)
	require.Equal(t, []string{"classic", "wide-modulus"}, names)
	require.Len(t, lits, 2)

	require.Equal(t, 256, lits[0].N)
	require.Zero(t, lits[0].QBig.Cmp(big.NewInt(7681)))
	require.Equal(t, 8.0, lits[0].Sigma)

	require.Equal(t, 512, lits[1].N)
	require.Zero(t, lits[1].QBig.Cmp(new(big.Int).Lsh(big.NewInt(1), 30)))
	require.Equal(t, 3.2, lits[1].Sigma)
}

func TestLoadBatchUnquotedExpression(t *testing.T) {
	// A power expression also parses as a plain YAML scalar
	path := writeBatchFile(t, `sets:
  - n: 128
    q: 2**13
    sigma: 5.0
`)

	names, lits, err := loadBatch(path)
	require.NoError(t, err)
	require.Equal(t, []string{"set-0"}, names)
	require.Zero(t, lits[0].QBig.Cmp(big.NewInt(8192)))
}

func TestLoadBatchErrors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		_, _, err := loadBatch(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("NotYAML", func(t *testing.T) {
		path := writeBatchFile(t, "{this is : not : yaml")
		_, _, err := loadBatch(path)
		require.Error(t, err)
	})

	t.Run("NoSets", func(t *testing.T) {
		path := writeBatchFile(t, "sets: []\n")
		_, _, err := loadBatch(path)
		require.ErrorContains(t, err, "no parameter sets")
	})

	t.Run("BadModulus", func(t *testing.T) {
		path := writeBatchFile(t, `sets:
  - name: broken
    n: 256
    q: xyz
    sigma: 8.0
`)
		_, _, err := loadBatch(path)
		require.ErrorContains(t, err, "broken")
	})

	t.Run("BadDimension", func(t *testing.T) {
		path := writeBatchFile(t, `sets:
  - name: nodim
    n: 0
    q: 7681
    sigma: 8.0
`)
		_, _, err := loadBatch(path)
		require.ErrorIs(t, err, lwe.ErrDimension)
		require.ErrorContains(t, err, "nodim")
	})
}
