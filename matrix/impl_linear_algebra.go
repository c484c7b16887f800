// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by spectral filters:
// closeness checks and the Jacobi eigensolver for symmetric matrices. All
// functions perform fail-fast validation and return sentinel errors wrapped
// with an operation tag.
//
// Notes:
//   - Eigen takes a *Dense fast path (flat-slice loops) and copies other Matrix
//     implementations through At first.
//   - Inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// Operation name constants for unified error wrapping.
const (
	opAllClose = "AllClose"
	opEigen    = "Eigen"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it is a *Dense, otherwise a Dense copy read via At.
// The returned flag reports whether m was already dense (shared storage).
func toDense(m Matrix) (*Dense, bool, error) {
	if d, ok := m.(*Dense); ok {
		return d, true, nil
	}
	r, c := m.Rows(), m.Cols()
	d, err := NewDense(r, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, false, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, false, err
			}
			d.data[i*c+j] = v
		}
	}

	return d, false, nil
}

// AllClose reports whether |a[i,j]-b[i,j]| ≤ atol + rtol*|b[i,j]| for every cell.
// Errors: ErrNilMatrix, ErrDimensionMismatch (different shapes).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via cyclic Jacobi sweeps.
//
// Implementation:
//   - Stage 1: Validate finite, symmetric square input within tol.
//   - Stage 2: Sweep over every (p,q), p<q, in fixed row-major order and annihilate
//     A[p,q] with a plane rotation; accumulate the rotations into Q.
//   - Stage 3: Stop as soon as max |A[p,q]| < tol; fail after maxIter sweeps.
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: convergence threshold on the largest off-diagonal magnitude.
//   - maxIter: maximum number of full sweeps (0 is allowed: only an already
//     diagonal matrix converges).
//
// Returns:
//   - []float64: eigenvalues in diagonal order (NOT sorted).
//   - *Dense: Q whose column k is the eigenvector of eigenvalue k.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrAsymmetry (wrapped),
//   - ErrMatrixEigenFailed (max off-diagonal ≥ tol after maxIter sweeps).
//
// Determinism:
//   - Fixed sweep order produces bit-identical results for identical input.
//
// Complexity:
//   - Time O(maxIter * n^3), Space O(n^2).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, shared, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a := src
	if shared {
		a = src.Clone().(*Dense) // never rotate the caller's storage
	}
	n := a.r
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		sweep              int
		i, p, r            int
		app, aqq, apq      float64
		theta, t, c, s     float64
		aip, aiq, qip, qiq float64
	)
	for sweep = 0; !(maxOffDiagonal(a) < tol); sweep++ {
		if sweep >= maxIter {
			return nil, nil, matrixErrorf(opEigen, fmt.Errorf("%d sweeps, tol=%g: %w", maxIter, tol, ErrMatrixEigenFailed))
		}
		for p = 0; p < n-1; p++ {
			for r = p + 1; r < n; r++ {
				apq = a.data[p*n+r]
				if apq == 0 {
					continue
				}
				app = a.data[p*n+p]
				aqq = a.data[r*n+r]
				// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1))
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for i = 0; i < n; i++ {
					if i == p || i == r {
						continue
					}
					aip = a.data[i*n+p]
					aiq = a.data[i*n+r]
					a.data[i*n+p], a.data[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
					a.data[i*n+r], a.data[r*n+i] = s*aip+c*aiq, s*aip+c*aiq
				}
				a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
				a.data[r*n+r] = s*s*app + 2*c*s*apq + c*c*aqq
				a.data[p*n+r], a.data[r*n+p] = 0, 0

				for i = 0; i < n; i++ {
					qip = q.data[i*n+p]
					qiq = q.data[i*n+r]
					q.data[i*n+p] = c*qip - s*qiq
					q.data[i*n+r] = s*qip + c*qiq
				}
			}
		}
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}

// maxOffDiagonal returns max_{i<j} |A[i,j]|, or NaN as soon as one is met.
func maxOffDiagonal(a *Dense) float64 {
	n := a.r
	maxOff := NormZero
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = math.Abs(a.data[i*n+j])
			if math.IsNaN(v) {
				return v
			}
			if v > maxOff {
				maxOff = v
			}
		}
	}

	return maxOff
}
