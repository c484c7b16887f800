// SPDX-License-Identifier: MIT

package rmt

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rmtfilter/matrix"
)

// errNoConvergence is the cause reported when gonum's EigenSym fails.
var errNoConvergence = errors.New("eigensolver did not converge")

// Decompose validates c and returns its eigendecomposition with eigenvalues
// in ascending order and eigenvector columns permuted to match.
//
// Errors:
//   - ErrInvalidInput (nil, empty, non-square, asymmetric beyond tolerance, NaN/Inf),
//   - ErrNumericInstability (no convergence, non-finite spectrum).
func Decompose(c matrix.Matrix, opts ...Option) (Spectrum, error) {
	o := gatherOptions(opts...)
	sym, err := symmetrized(opDecompose, c, o.symmetryTol)
	if err != nil {
		return Spectrum{}, err
	}

	return decompose(sym, o)
}

// symmetrized validates c and returns (C + Cᵗ)/2 as a SymDense.
// Validation order: nil → shape → finiteness → symmetry.
func symmetrized(op string, c matrix.Matrix, tol float64) (*mat.SymDense, error) {
	if err := matrix.ValidateNotNil(c); err != nil {
		return nil, invalidInputf(op, err)
	}
	if err := matrix.ValidateSquare(c); err != nil {
		return nil, invalidInputf(op, err)
	}
	if err := matrix.ValidateFinite(c); err != nil {
		return nil, invalidInputf(op, err)
	}
	if err := matrix.ValidateSymmetric(c, tol); err != nil {
		return nil, invalidInputf(op, err)
	}

	n := c.Rows()
	sym := mat.NewSymDense(n, nil)
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			aij, _ = c.At(i, j) // in range after ValidateSquare
			aji, _ = c.At(j, i)
			sym.SetSym(i, j, (aij+aji)/2)
		}
	}

	return sym, nil
}

// decompose dispatches to the configured backend and checks the result.
func decompose(sym *mat.SymDense, o Options) (Spectrum, error) {
	var (
		sp  Spectrum
		err error
	)
	switch o.solver {
	case SolverJacobi:
		sp, err = decomposeJacobi(sym, o.jacobiTol, o.jacobiMaxSweeps)
	default:
		sp, err = decomposeLAPACK(sym)
	}
	if err != nil {
		return Spectrum{}, err
	}
	if !allFinite(sp.Values) || !allFinite(sp.Vectors.RawMatrix().Data) {
		return Spectrum{}, instabilityf(opDecompose, matrix.ErrNaNInf)
	}

	o.logger.Debug().
		Str("solver", o.solver.String()).
		Int("n", len(sp.Values)).
		Float64("min_eigenvalue", sp.Values[0]).
		Float64("max_eigenvalue", sp.Values[len(sp.Values)-1]).
		Msg("rmt: spectrum decomposed")

	return sp, nil
}

// decomposeLAPACK uses gonum's EigenSym, which already returns ascending values.
func decomposeLAPACK(sym *mat.SymDense) (Spectrum, error) {
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return Spectrum{}, instabilityf(opDecompose, errNoConvergence)
	}
	values := es.Values(nil)
	vectors := new(mat.Dense)
	es.VectorsTo(vectors)

	return Spectrum{Values: values, Vectors: vectors}, nil
}

// decomposeJacobi runs matrix.Eigen and sorts the (value, column) pairs ascending.
func decomposeJacobi(sym *mat.SymDense, tol float64, maxSweeps int) (Spectrum, error) {
	n := sym.SymmetricDim()
	data := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			data[i*n+j] = sym.At(i, j)
		}
	}
	a, err := matrix.NewDenseFrom(n, n, data)
	if err != nil {
		return Spectrum{}, invalidInputf(opDecompose, err)
	}
	raw, q, err := matrix.Eigen(a, tol, maxSweeps)
	if err != nil {
		if errors.Is(err, matrix.ErrMatrixEigenFailed) {
			return Spectrum{}, instabilityf(opDecompose, err)
		}
		return Spectrum{}, fmt.Errorf("%s: %w", opDecompose, err)
	}

	// Argsort sorts values in place and records where each came from.
	order := make([]int, n)
	floats.Argsort(raw, order)

	qv := q.Values()
	vectors := mat.NewDense(n, n, nil)
	var k int
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			vectors.Set(i, k, qv[i*n+order[k]])
		}
	}

	return Spectrum{Values: raw, Vectors: vectors}, nil
}

// allFinite reports whether s holds no NaN and no ±Inf.
func allFinite(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
