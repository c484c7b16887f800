// SPDX-License-Identifier: MIT
// Package rmt_test contains fixtures shared by the filter tests.
//
// Purpose:
//   - Build small correlation matrices with a known eigenstructure.
//   - Build realistic factor-model correlation matrices from seeded returns.

package rmt_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/rmtfilter/matrix"
)

// uniformCorrelation returns (1−ρ)·I + ρ·J: eigenvalue 1+(n−1)ρ once
// (eigenvector 1/√n) and 1−ρ with multiplicity n−1.
func uniformCorrelation(t testing.TB, n int, rho float64) *matrix.Dense {
	t.Helper()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				data[i*n+j] = 1
			} else {
				data[i*n+j] = rho
			}
		}
	}
	m, err := matrix.NewDenseFrom(n, n, data)
	require.NoError(t, err)

	return m
}

// identity returns I_n or fails the test.
func identity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// factorCorrelation simulates obs returns of n series driven by one market
// factor, `sectors` sector factors and idiosyncratic noise, and returns their
// sample correlation matrix.
func factorCorrelation(t testing.TB, n, obs, sectors int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	x := mat.NewDense(obs, n, nil)
	for r := 0; r < obs; r++ {
		market := rng.NormFloat64()
		sector := make([]float64, sectors)
		for s := range sector {
			sector[s] = rng.NormFloat64()
		}
		for i := 0; i < n; i++ {
			x.Set(r, i, 0.6*market+0.8*sector[i%sectors]+rng.NormFloat64())
		}
	}
	corr := mat.NewSymDense(n, nil)
	stat.CorrelationMatrix(corr, x, nil)

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = corr.At(i, j)
		}
	}
	m, err := matrix.NewDenseFrom(n, n, data)
	require.NoError(t, err)

	return m
}

// at reads m[i,j] or fails the test.
func at(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireModularityShape checks the output contract: exact unit diagonal and
// exact symmetry.
func requireModularityShape(t testing.TB, m *matrix.Dense, n int) {
	t.Helper()
	require.Equal(t, n, m.Rows())
	require.Equal(t, n, m.Cols())
	for i := 0; i < n; i++ {
		require.Equal(t, 1.0, at(t, m, i, i), "diagonal (%d,%d)", i, i)
		for j := i + 1; j < n; j++ {
			require.Equal(t, at(t, m, i, j), at(t, m, j, i), "symmetry (%d,%d)", i, j)
		}
	}
}

// asymmetric is a Matrix whose (0,1) and (1,0) entries disagree.
func asymmetric(t testing.TB, delta float64) *matrix.Dense {
	t.Helper()
	m := identity(t, 3)
	require.NoError(t, m.Set(0, 1, 0.3))
	require.NoError(t, m.Set(1, 0, 0.3+delta))

	return m
}

// emptyMatrix is a 0×0 Matrix; Dense refuses that shape, callers may not.
type emptyMatrix struct{}

func (emptyMatrix) Rows() int                    { return 0 }
func (emptyMatrix) Cols() int                    { return 0 }
func (emptyMatrix) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (emptyMatrix) Set(int, int, float64) error  { return matrix.ErrOutOfRange }
func (e emptyMatrix) Clone() matrix.Matrix       { return e }
