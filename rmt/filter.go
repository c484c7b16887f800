// SPDX-License-Identifier: MIT

package rmt

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/rmtfilter/matrix"
)

// Filter returns the RMT-filtered version of the correlation matrix c,
// estimated from observations time points. The result is symmetric, has an
// exactly unit diagonal and carries only the group component of c; it is
// ready to be used as a modularity matrix.
//
// observations ≤ len(c) is accepted (data-poor regime). c is never mutated.
//
// Errors:
//   - ErrInvalidInput, ErrNumericInstability (see Analyze).
func Filter(c matrix.Matrix, observations int, opts ...Option) (*matrix.Dense, error) {
	res, err := Analyze(c, observations, opts...)
	if err != nil {
		return nil, err
	}

	return res.Filtered, nil
}

// Analyze runs the full pipeline and returns every intermediate: spectrum,
// bulk edges, partition, rebuilt diagonal and the filtered matrix.
//
// A degenerate partition (no eigenvalue above the noise bulk) is not an
// error: the result is valid and Partition.Degenerate is set.
//
// Errors:
//   - ErrInvalidInput: nil/empty/non-square/asymmetric/non-finite c, or observations ≤ 0,
//   - ErrNumericInstability: solver failure or non-finite spectrum/output.
func Analyze(c matrix.Matrix, observations int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Cheap scalar check before the O(n²) matrix validation.
	if observations <= 0 {
		return nil, invalidInputf(opFilter, fmt.Errorf("observations=%d: %w", observations, ErrNonPositiveObservations))
	}
	sym, err := symmetrized(opFilter, c, o.symmetryTol)
	if err != nil {
		return nil, err
	}
	n := sym.SymmetricDim()
	if o.logger.GetLevel() != zerolog.Disabled {
		// Every event of one run shares a run_id.
		o.logger = o.logger.With().Str("run_id", uuid.NewString()).Logger()
	}

	sp, err := decompose(sym, o)
	if err != nil {
		return nil, err
	}

	edges, err := EstimateBulkEdges(sp.Values, n, observations)
	if err != nil {
		return nil, err
	}
	o.logger.Debug().
		Int("n", n).
		Int("observations", observations).
		Float64("q", edges.Q).
		Float64("sigma", edges.Sigma).
		Float64("upper_edge", edges.Upper).
		Float64("lower_edge", edges.Lower).
		Msg("rmt: bulk edges estimated")

	part, err := PartitionSpectrum(sp.Values, edges)
	if err != nil {
		return nil, err
	}
	if part.Degenerate {
		o.logger.Warn().
			Int("n", n).
			Int("observations", observations).
			Float64("upper_edge", edges.Upper).
			Float64("max_eigenvalue", sp.Values[n-1]).
			Msg("rmt: no eigenvalue above the noise bulk, spectrum flattened")
	} else {
		o.logger.Debug().
			Int("max_index", part.MaxIndex).
			Int("min_index", part.MinIndex).
			Int("group_modes", n-1-part.MaxIndex).
			Msg("rmt: spectrum partitioned")
	}

	rebuilt, err := RebuildSpectrum(sp.Values, part)
	if err != nil {
		return nil, err
	}

	filtered, err := Reconstruct(sp.Vectors, rebuilt.Diagonal)
	if err != nil {
		return nil, err
	}

	return &Result{
		Spectrum:  sp,
		Edges:     edges,
		Partition: part,
		Rebuilt:   rebuilt,
		Filtered:  filtered,
	}, nil
}
