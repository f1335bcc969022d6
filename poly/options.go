// SPDX-License-Identifier: MIT

// Package poly: functional configuration for the evaluation kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: parallel and sequential runs produce identical bits.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - WithLeft/WithRight only affect Interp. WithWorkers/WithChunkSize affect
//     Polyval and Interp. Polyfit takes no options and always runs sequentially.
package poly

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers runs kernels on the calling goroutine.
	DefaultWorkers = 1

	// DefaultChunkSize is the number of query points handed to one goroutine.
	// Inputs no longer than one chunk are always evaluated sequentially.
	DefaultChunkSize = 4096
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "poly: WithWorkers: n must be >= 1"
	panicChunkSizeInvalid = "poly: WithChunkSize: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (last write wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers   int // >= 1; DefaultWorkers
	chunkSize int // >= 1; DefaultChunkSize

	left, right       float64 // Interp boundary overrides
	hasLeft, hasRight bool    // false ⇒ use fp[0] / fp[n-1]
}

// WithWorkers bounds the number of goroutines used by Polyval and Interp.
// n == 1 keeps evaluation on the calling goroutine.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithChunkSize sets how many consecutive query points one goroutine evaluates.
// Panics when n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic(panicChunkSizeInvalid)
	}

	return func(o *Options) { o.chunkSize = n }
}

// WithLeft sets the value Interp returns for query points x <= xp[0].
// Without it Interp returns fp[0].
func WithLeft(v float64) Option {
	return func(o *Options) {
		o.left = v
		o.hasLeft = true
	}
}

// WithRight sets the value Interp returns for query points x >= xp[n-1].
// Without it Interp returns fp[n-1].
func WithRight(v float64) Option {
	return func(o *Options) {
		o.right = v
		o.hasRight = true
	}
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		workers:   DefaultWorkers,
		chunkSize: DefaultChunkSize,
	}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
