// SPDX-License-Identifier: MIT

// Package rmt: functional configuration of the filter.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//     Untrusted values go through Config.Options, which returns errors instead.
package rmt

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSolver is the eigendecomposition backend.
	DefaultSolver = SolverLAPACK

	// DefaultSymmetryTolerance bounds |C[i,j] − C[j,i]| for accepted input.
	DefaultSymmetryTolerance = 1e-9

	// DefaultJacobiTolerance is the off-diagonal convergence threshold of SolverJacobi.
	DefaultJacobiTolerance = 1e-12

	// DefaultJacobiMaxSweeps caps the number of full Jacobi sweeps.
	DefaultJacobiMaxSweeps = 100
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSolverInvalid    = "rmt: WithSolver: unknown solver"
	panicSymTolInvalid    = "rmt: WithSymmetryTolerance: tol must be finite, non-negative"
	panicJacobiTolInvalid = "rmt: WithJacobi: tol must be finite, positive"
	panicJacobiSweeps     = "rmt: WithJacobi: maxSweeps must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	solver          Solver
	symmetryTol     float64
	jacobiTol       float64
	jacobiMaxSweeps int
	logger          zerolog.Logger
}

// WithSolver selects the eigendecomposition backend.
// Panics on an unknown Solver value.
func WithSolver(s Solver) Option {
	if s != SolverLAPACK && s != SolverJacobi {
		panic(panicSolverInvalid)
	}

	return func(o *Options) { o.solver = s }
}

// WithSymmetryTolerance sets the accepted asymmetry |C[i,j] − C[j,i]|.
// The accepted input is symmetrized as (C + Cᵗ)/2 before decomposition.
// Panics when tol is negative, NaN or Inf.
func WithSymmetryTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSymTolInvalid)
	}

	return func(o *Options) { o.symmetryTol = tol }
}

// WithJacobi tunes SolverJacobi: tol is the off-diagonal threshold and
// maxSweeps the sweep cap. It does not select the Jacobi solver by itself.
// Panics when tol ≤ 0 / non-finite or maxSweeps < 0.
func WithJacobi(tol float64, maxSweeps int) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicJacobiTolInvalid)
	}
	if maxSweeps < 0 {
		panic(panicJacobiSweeps)
	}

	return func(o *Options) {
		o.jacobiTol = tol
		o.jacobiMaxSweeps = maxSweeps
	}
}

// WithLogger routes debug/warn events of the pipeline to l. Events of one
// Analyze call carry the same run_id field.
// The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user-provided setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		solver:          DefaultSolver,
		symmetryTol:     DefaultSymmetryTolerance,
		jacobiTol:       DefaultJacobiTolerance,
		jacobiMaxSweeps: DefaultJacobiMaxSweeps,
		logger:          zerolog.Nop(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
