// SPDX-License-Identifier: MIT

package rmt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rmtfilter/matrix"
)

// Reconstruct computes M = V·diag(dg)·Vᵗ and overwrites the diagonal of M
// with exactly 1. The upper triangle is mirrored into the lower one, so the
// result is bitwise symmetric.
//
// Errors:
//   - ErrInvalidInput when vectors is nil, not square, or len(dg) differs from its size,
//   - ErrNumericInstability when an off-diagonal entry is NaN or ±Inf.
func Reconstruct(vectors *mat.Dense, dg []float64) (*matrix.Dense, error) {
	if vectors == nil {
		return nil, invalidInputf(opReconstruct, matrix.ErrNilMatrix)
	}
	r, c := vectors.Dims()
	if r != c {
		return nil, invalidInputf(opReconstruct, matrix.ErrNonSquare)
	}
	if r == 0 || len(dg) != r {
		return nil, invalidInputf(opReconstruct, fmt.Errorf("%d eigenvectors, %d eigenvalues: %w", r, len(dg), matrix.ErrDimensionMismatch))
	}
	n := r

	d := append([]float64(nil), dg...)
	var scaled, m mat.Dense
	scaled.Mul(vectors, mat.NewDiagDense(n, d))
	m.Mul(&scaled, vectors.T())

	out := make([]float64, n*n)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		out[i*n+i] = 1
		for j = i + 1; j < n; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, instabilityf(opReconstruct, fmt.Errorf("(%d,%d): %w", i, j, matrix.ErrNaNInf))
			}
			out[i*n+j] = v
			out[j*n+i] = v
		}
	}

	res, err := matrix.NewDenseFrom(n, n, out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}

	return res, nil
}
