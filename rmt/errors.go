// SPDX-License-Identifier: MIT

package rmt

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the filter. Match them with errors.Is; input errors
// additionally wrap the matrix sentinel that triggered them
// (matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry, matrix.ErrNaNInf).
var (
	// ErrInvalidInput reports a nil, empty, non-square, asymmetric or
	// non-finite matrix, or a non-positive observation count.
	ErrInvalidInput = errors.New("rmt: invalid input")

	// ErrNonPositiveObservations is the cause wrapped into ErrInvalidInput when T ≤ 0.
	ErrNonPositiveObservations = errors.New("rmt: observation count must be positive")

	// ErrNumericInstability reports solver non-convergence or NaN/Inf in the
	// spectrum or in the reconstructed matrix.
	ErrNumericInstability = errors.New("rmt: numeric instability")

	// ErrInvalidConfig reports a Config value that cannot be turned into options.
	ErrInvalidConfig = errors.New("rmt: invalid config")
)

// Operation tags.
const (
	opFilter      = "Filter"
	opDecompose   = "Decompose"
	opEdges       = "EstimateBulkEdges"
	opPartition   = "PartitionSpectrum"
	opRebuild     = "RebuildSpectrum"
	opReconstruct = "Reconstruct"
	opConfig      = "Config"
)

// invalidInputf tags cause as ErrInvalidInput while keeping it matchable.
func invalidInputf(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, cause)
}

// instabilityf tags cause as ErrNumericInstability while keeping it matchable.
func instabilityf(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNumericInstability, cause)
}
