// Package rmt filters empirical correlation matrices with Random Matrix Theory
// so that only the community-indicative ("group") structure survives.
//
// 🚀 What does it do?
//
//	An empirical correlation matrix of N series observed over T points mixes
//	three spectral components:
//	  • noise  — eigenvalues inside the Marchenko–Pastur bulk,
//	  • group  — eigenvalues above the bulk (sector/cluster structure),
//	  • market — the single largest eigenvalue (common factor).
//	Filter keeps the group component, collapses the noise to its mean and
//	removes the market mode, producing a matrix that can be handed straight to
//	a community-detection algorithm as its modularity matrix.
//
// ✨ Pipeline:
//  1. Decompose          — symmetric eigendecomposition, ascending eigenvalues.
//  2. EstimateBulkEdges  — σ·(1 + 1/Q ± 2·√(1/Q)), Q = T/N, σ = 1 − λ_max/N.
//  3. PartitionSpectrum  — first eigenvalue strictly above the upper edge.
//  4. RebuildSpectrum    — noise → mean, group kept, market → 0.
//  5. Reconstruct        — M = V·diag(Dg)·Vᵗ, then diag(M) = 1 exactly.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rmtfilter/rmt"
//
//	m, err := rmt.Filter(corr, observations)
//	if err != nil {
//	  // errors.Is(err, rmt.ErrInvalidInput) / rmt.ErrNumericInstability
//	}
//
//	// diagnostics (edges, partition, rebuilt spectrum):
//	res, err := rmt.Analyze(corr, observations,
//	  rmt.WithSolver(rmt.SolverJacobi),
//	  rmt.WithLogger(logger),
//	)
//
// Off-diagonal entries of the result are filtered correlations and may leave
// [-1, 1]; the diagonal is exactly 1.
//
// Performance:
//
//   - Time:   O(N³) (one eigendecomposition, two products)
//   - Memory: O(N²)
package rmt
