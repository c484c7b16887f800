// SPDX-License-Identifier: MIT

package rmt

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// RebuildSpectrum builds the filtered eigenvalue diagonal Dg.
//
//	NoiseFloor = mean(λ[0..MaxIndex])        (boundary eigenvalue included)
//	Dg[i]      = NoiseFloor  for i < MaxIndex
//	Dg[i]      = λ[i]        for MaxIndex ≤ i ≤ N−2
//	Dg[N−1]    = 0           (market mode removed)
//
// The noise band keeps its total variance but loses its structure; the group
// band is untouched. In the degenerate partition every entry but the last is
// the global mean.
//
// Errors:
//   - ErrInvalidInput when p does not describe eigenvalues (length or index out of range).
func RebuildSpectrum(eigenvalues []float64, p Partition) (Rebuilt, error) {
	n := len(eigenvalues)
	if n == 0 || p.N != n || p.MaxIndex < 0 || p.MaxIndex >= n {
		return Rebuilt{}, invalidInputf(opRebuild, fmt.Errorf("partition N=%d MaxIndex=%d for %d eigenvalues", p.N, p.MaxIndex, n))
	}

	floor := floats.Sum(eigenvalues[:p.MaxIndex+1]) / float64(p.MaxIndex+1)
	dg := make([]float64, n) // Dg[n-1] stays 0
	var i int
	for i = 0; i < p.MaxIndex; i++ {
		dg[i] = floor
	}
	for i = p.MaxIndex; i < n-1; i++ {
		dg[i] = eigenvalues[i]
	}

	return Rebuilt{NoiseFloor: floor, Diagonal: dg}, nil
}
