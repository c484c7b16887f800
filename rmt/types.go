// SPDX-License-Identifier: MIT

package rmt

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rmtfilter/matrix"
)

// Solver selects the eigendecomposition backend.
//
//   - SolverLAPACK: gonum's EigenSym (tridiagonal QL/QR, LAPACK dsyev port).
//     Fast and the default.
//   - SolverJacobi: deterministic cyclic Jacobi rotations from the matrix
//     package. Slower, but bit-reproducible and dependency-free in its kernel.
type Solver int

const (
	// SolverLAPACK uses gonum.org/v1/gonum/mat.EigenSym.
	SolverLAPACK Solver = iota

	// SolverJacobi uses matrix.Eigen.
	SolverJacobi
)

// String returns the config name of the solver.
func (s Solver) String() string {
	switch s {
	case SolverLAPACK:
		return "lapack"
	case SolverJacobi:
		return "jacobi"
	default:
		return "unknown"
	}
}

// Spectrum is an eigendecomposition with eigenvalues in ascending order.
// Column k of Vectors is the unit eigenvector of Values[k].
type Spectrum struct {
	Values  []float64
	Vectors *mat.Dense
}

// BulkEdges holds the Marchenko–Pastur bounds predicted for a pure-noise
// correlation matrix of the analysed shape.
type BulkEdges struct {
	Q     float64 // aspect ratio T/N
	Sigma float64 // bias factor 1 − λ_max/N
	Upper float64 // σ·(1 + 1/Q + 2·√(1/Q))
	Lower float64 // σ·(1 + 1/Q − 2·√(1/Q))
}

// Spread returns 2σ√(1/Q), the distance from the bulk centre σ(1+1/Q) to either edge.
// For a fixed spectrum it shrinks monotonically as T grows.
func (e BulkEdges) Spread() float64 {
	return 2 * e.Sigma * math.Sqrt(1/e.Q)
}

// Band is the spectral component an eigenvalue index belongs to.
type Band int

const (
	// BandNoise eigenvalues are replaced by the noise floor.
	BandNoise Band = iota
	// BandGroup eigenvalues are kept unchanged.
	BandGroup
	// BandMarket is the largest eigenvalue; it is removed.
	BandMarket
)

// String returns a lower-case band name.
func (b Band) String() string {
	switch b {
	case BandNoise:
		return "noise"
	case BandGroup:
		return "group"
	case BandMarket:
		return "market"
	default:
		return "unknown"
	}
}

// Partition records the index boundaries of the ascending spectrum (0-based).
//
//   - MaxIndex: first index whose eigenvalue is strictly above BulkEdges.Upper,
//     or N−1 when there is none. The noise floor averages Values[0..MaxIndex].
//   - MinIndex: last index whose eigenvalue is strictly below BulkEdges.Lower,
//     or 0 when there is none. Diagnostic only.
//   - Degenerate: no eigenvalue exceeds the upper edge; the whole spectrum
//     below the market mode is noise.
type Partition struct {
	N          int
	MaxIndex   int
	MinIndex   int
	Degenerate bool
}

// Classify reports the band of eigenvalue index i as used by the rebuilder:
// indices below MaxIndex are noise, MaxIndex..N−2 are group and N−1 is market.
// Out-of-range indices report BandNoise.
func (p Partition) Classify(i int) Band {
	switch {
	case i == p.N-1:
		return BandMarket
	case i >= p.MaxIndex && i < p.N-1:
		return BandGroup
	default:
		return BandNoise
	}
}

// Rebuilt is the modified eigenvalue diagonal Dg.
type Rebuilt struct {
	NoiseFloor float64   // mean of Values[0..MaxIndex]
	Diagonal   []float64 // Dg, len N
}

// Result carries every intermediate of one Analyze call.
type Result struct {
	Spectrum  Spectrum
	Edges     BulkEdges
	Partition Partition
	Rebuilt   Rebuilt
	Filtered  *matrix.Dense
}
