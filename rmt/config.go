// SPDX-License-Identifier: MIT

package rmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the declarative form of the filter options, e.g. a section of a
// larger YAML document owned by the caller:
//
//	solver: jacobi
//	symmetry_tolerance: 1e-8
//	jacobi_tolerance: 1e-12
//	jacobi_max_sweeps: 50
//	log_level: debug
//
// Zero values mean "use the default".
type Config struct {
	Solver            string  `yaml:"solver"`
	SymmetryTolerance float64 `yaml:"symmetry_tolerance"`
	JacobiTolerance   float64 `yaml:"jacobi_tolerance"`
	JacobiMaxSweeps   int     `yaml:"jacobi_max_sweeps"`
	LogLevel          string  `yaml:"log_level"`
}

// ParseConfig decodes YAML bytes into a Config. Unknown keys are rejected so
// that typos do not silently fall back to defaults. Empty input yields the
// zero Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%s: %w: %w", opConfig, ErrInvalidConfig, err)
	}

	return cfg, nil
}

// ParseSolver maps a config name ("lapack", "jacobi"; case-insensitive) to a Solver.
func ParseSolver(name string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lapack":
		return SolverLAPACK, nil
	case "jacobi":
		return SolverJacobi, nil
	default:
		return 0, fmt.Errorf("%s: solver %q: %w", opConfig, name, ErrInvalidConfig)
	}
}

// Options validates c and converts it into Option setters. When LogLevel is
// set, base is attached with that level; otherwise base is left out and the
// filter keeps its discarding default.
func (c Config) Options(base zerolog.Logger) ([]Option, error) {
	var opts []Option

	if c.Solver != "" {
		s, err := ParseSolver(c.Solver)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSolver(s))
	}
	if c.SymmetryTolerance != 0 {
		if math.IsNaN(c.SymmetryTolerance) || math.IsInf(c.SymmetryTolerance, 0) || c.SymmetryTolerance < 0 {
			return nil, fmt.Errorf("%s: symmetry_tolerance=%g: %w", opConfig, c.SymmetryTolerance, ErrInvalidConfig)
		}
		opts = append(opts, WithSymmetryTolerance(c.SymmetryTolerance))
	}
	if c.JacobiTolerance != 0 || c.JacobiMaxSweeps != 0 {
		tol, sweeps := DefaultJacobiTolerance, DefaultJacobiMaxSweeps
		if c.JacobiTolerance != 0 {
			tol = c.JacobiTolerance
		}
		if c.JacobiMaxSweeps != 0 {
			sweeps = c.JacobiMaxSweeps
		}
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 || sweeps < 0 {
			return nil, fmt.Errorf("%s: jacobi_tolerance=%g jacobi_max_sweeps=%d: %w", opConfig, tol, sweeps, ErrInvalidConfig)
		}
		opts = append(opts, WithJacobi(tol, sweeps))
	}
	if c.LogLevel != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
		if err != nil {
			return nil, fmt.Errorf("%s: log_level %q: %w: %w", opConfig, c.LogLevel, ErrInvalidConfig, err)
		}
		opts = append(opts, WithLogger(base.Level(lvl)))
	}

	return opts, nil
}
