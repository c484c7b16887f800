// SPDX-License-Identifier: MIT

package rmt

import "fmt"

// PartitionSpectrum locates the noise/group boundary of an ascending spectrum.
//
// Boundary policy (strict comparisons):
//   - MaxIndex is the first i with eigenvalues[i] > edges.Upper. An eigenvalue
//     exactly on the edge is noise. With no such i, MaxIndex = N−1 and the
//     partition is Degenerate (everything below the market mode is noise).
//   - MinIndex is the last i with eigenvalues[i] < edges.Lower, or 0.
//
// Errors:
//   - ErrInvalidInput on an empty spectrum.
func PartitionSpectrum(eigenvalues []float64, edges BulkEdges) (Partition, error) {
	n := len(eigenvalues)
	if n == 0 {
		return Partition{}, invalidInputf(opPartition, fmt.Errorf("empty spectrum"))
	}

	p := Partition{N: n, MaxIndex: n - 1, Degenerate: true}
	for i, v := range eigenvalues {
		if v > edges.Upper {
			p.MaxIndex = i
			p.Degenerate = false
			break
		}
	}
	for i := n - 1; i >= 0; i-- {
		if eigenvalues[i] < edges.Lower {
			p.MinIndex = i
			break
		}
	}

	return p, nil
}
