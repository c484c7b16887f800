// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite unless a test targets the numeric policy.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rmtfilter/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths of the kernels.
type hide struct{ matrix.Matrix }

// zeroShape is a 0×0 Matrix; Dense cannot represent it.
type zeroShape struct{}

func (zeroShape) Rows() int                    { return 0 }
func (zeroShape) Cols() int                    { return 0 }
func (zeroShape) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (zeroShape) Set(int, int, float64) error  { return matrix.ErrOutOfRange }
func (z zeroShape) Clone() matrix.Matrix       { return z }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from row-major vals.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// MustSet writes m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts strict equality between m and a 2D literal.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("CompareExact: Rows = %d; want %d", m.Rows(), len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		if len(want[i]) != m.Cols() {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, m.Cols(), len(want[i]))
		}
		for j = 0; j < m.Cols(); j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose asserts AllClose(a,b) under (rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)", rtol, atol)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// spdValues returns a seeded n×n SPD matrix MᵀM (row-major), M ~ U(-1,1).
// SymDense storage keeps the result exactly symmetric.
func spdValues(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	raw := make([]float64, n*n)
	for i := range raw {
		raw[i] = rng.Float64()*2 - 1
	}
	var s mat.SymDense
	s.SymOuterK(1, mat.NewDense(n, n, raw).T())

	out := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out[i*n+j] = s.At(i, j)
		}
	}

	return out
}

// gonumView copies m into a gonum Dense for reference products.
func gonumView(t *testing.T, m matrix.Matrix) *mat.Dense {
	t.Helper()
	out := mat.NewDense(m.Rows(), m.Cols(), nil)
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			out.Set(i, j, MustAt(t, m, i, j))
		}
	}

	return out
}

// propOrthonormal asserts QᵀQ ≈ I.
func propOrthonormal(t *testing.T, q matrix.Matrix, atol float64) {
	t.Helper()
	g := gonumView(t, q)
	var qtq mat.Dense
	qtq.Mul(g.T(), g)
	n := q.Cols()
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	if !mat.EqualApprox(&qtq, mat.NewDiagDense(n, ones), atol) {
		t.Fatalf("QᵀQ != I within %g:\n%v", atol, mat.Formatted(&qtq))
	}
}

// propReconstruction asserts A ≈ Q·diag(vals)·Qᵀ.
func propReconstruction(t *testing.T, a, q matrix.Matrix, vals []float64, atol float64) {
	t.Helper()
	g := gonumView(t, q)
	var qd, got mat.Dense
	qd.Mul(g, mat.NewDiagDense(len(vals), append([]float64(nil), vals...)))
	got.Mul(&qd, g.T())
	if !mat.EqualApprox(&got, gonumView(t, a), atol) {
		t.Fatalf("Q·D·Qᵀ != A within %g:\n%v", atol, mat.Formatted(&got))
	}
}
