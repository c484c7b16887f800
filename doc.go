// Package rmtfilter cleans empirical correlation matrices with Random Matrix
// Theory before they are handed to a community-detection algorithm.
//
// 🚀 What is rmtfilter?
//
//	A small, deterministic library that turns a noisy correlation matrix of
//	N series observed over T time points into a "group" matrix:
//		• Eigendecomposition (gonum LAPACK port or a pure-Go Jacobi solver)
//		• Marchenko–Pastur bulk edges with a market-mode variance correction
//		• Noise / group / market partition of the spectrum
//		• Rebuild: noise collapsed to its mean, market mode removed
//		• Reconstruction with an exactly unit diagonal
//
// ✨ Why choose rmtfilter?
//
//   - Fail-fast validation with sentinel errors (errors.Is friendly)
//   - Every intermediate is inspectable through rmt.Analyze
//   - Structured logging through zerolog, silent by default
//   - Functional options or a YAML config section, same knobs
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — Dense storage, validators, AllClose, Jacobi Eigen
//	rmt/    — the filter pipeline: Decompose, EstimateBulkEdges,
//	          PartitionSpectrum, RebuildSpectrum, Reconstruct, Filter, Analyze
//
// Spectrum of a typical market correlation matrix:
//
//	noise bulk        group         market
//	▁▁▂▂▃▃▂▁ ........ ▌ ▌ ▌ ....... ▌
//	0           λ+                  λmax
//
// Only the middle band survives the filter.
//
//	go get github.com/katalvlaran/rmtfilter/rmt
package rmtfilter
