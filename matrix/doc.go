// Package matrix offers the dense matrix type and numeric kernels used by the
// spectral filters of this module.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-value policy (NaN/Inf rejection, on by default).
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSymmetric,
//     ValidateFinite) returning sentinel errors matched with errors.Is.
//   - Kernels: AllClose and Eigen, a deterministic cyclic Jacobi
//     eigensolver for symmetric matrices.
//
// Matrices here are small-to-medium and dense (correlation matrices of a few
// hundred series); O(n²) memory and O(n³) kernels are the expected regime.
package matrix
