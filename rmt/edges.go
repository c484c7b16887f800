// SPDX-License-Identifier: MIT

package rmt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// EstimateBulkEdges computes the Marchenko–Pastur eigenvalue range expected
// from n uncorrelated series observed t times, corrected by the share of
// variance not carried by the largest eigenvalue:
//
//	Q     = t/n
//	σ     = 1 − max(λ)/n
//	Upper = σ·(1 + 1/Q + 2·√(1/Q))
//	Lower = σ·(1 + 1/Q − 2·√(1/Q))
//
// Q < 1 (fewer observations than series) is valid. Every t ≥ 1 yields finite edges.
//
// Errors:
//   - ErrInvalidInput when n ≤ 0, t ≤ 0 or len(eigenvalues) != n.
func EstimateBulkEdges(eigenvalues []float64, n, t int) (BulkEdges, error) {
	if n <= 0 || len(eigenvalues) != n {
		return BulkEdges{}, invalidInputf(opEdges, fmt.Errorf("n=%d with %d eigenvalues", n, len(eigenvalues)))
	}
	if t <= 0 {
		return BulkEdges{}, invalidInputf(opEdges, fmt.Errorf("t=%d: %w", t, ErrNonPositiveObservations))
	}

	q := float64(t) / float64(n)
	invQ := 1 / q
	root := math.Sqrt(invQ)
	sigma := 1 - floats.Max(eigenvalues)/float64(n)

	return BulkEdges{
		Q:     q,
		Sigma: sigma,
		Upper: sigma * (1 + invQ + 2*root),
		Lower: sigma * (1 + invQ - 2*root),
	}, nil
}
