// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Centralize configuration for the column reducers via functional options.
//   - Keep defaults in one place (Default* constants) so docs and code never diverge.
//
// Policy summary:
//   - Summation: naive first-to-last accumulation by default (bit-exact with the
//     plain loop). Compensated summation is opt-in and documented as a deviation.
//   - Parallelism: sequential by default. Column panels may be fanned out to a
//     bounded worker group; results stay bit-identical to the sequential run.
//   - Empty columns: a 0×c matrix yields NaN means (IEEE 0/0) unless overridden.
//
// Constructors panic only on nonsensical values (programmer error); runtime
// input problems are reported as sentinel errors by the kernels.

package matrix

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSummation is the accumulation strategy used when none is given.
	DefaultSummation = SummationNaive

	// DefaultWorkers keeps the reference behavior: one goroutine, left to right.
	DefaultWorkers = 1

	// DefaultMinParallelElements is the smallest r*c for which a parallel
	// request actually fans out. Smaller inputs finish faster inline.
	DefaultMinParallelElements = 64 * 64 * 16

	// DefaultPanelWidth of 0 means "derive from CPU features" (see cpu.go).
	DefaultPanelWidth = 0
)

// DefaultEmptyMean is the mean reported for every column of a matrix with
// zero rows. NaN matches IEEE 0.0/0.0.
var DefaultEmptyMean = math.NaN()

// Panic messages (stable for tests).
const (
	panicSummationInvalid   = "matrix: WithSummation: unknown summation strategy"
	panicWorkersInvalid     = "matrix: WithWorkers: workers must be >= 1"
	panicMinParallelInvalid = "matrix: WithMinParallelElements: threshold must be >= 0"
	panicPanelWidthInvalid  = "matrix: WithPanelWidth: width must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept ...Option and resolve them via gatherOptions.
type Options struct {
	summation           Summation // DefaultSummation
	workers             int       // DefaultWorkers
	minParallelElements int       // DefaultMinParallelElements
	panelWidth          int       // DefaultPanelWidth (0 = auto)
	emptyMean           float64   // DefaultEmptyMean
}

// ---------- Constructors (WithX) ----------

// WithSummation selects the accumulation strategy.
//
// Behavior highlights:
//   - SummationNaive reproduces the straightforward loop bit for bit.
//   - SummationCompensated trades a few extra flops per element for a
//     tighter error bound; results may differ in the last bits.
//
// Panics on an undeclared Summation value.
func WithSummation(s Summation) Option {
	if !s.valid() {
		panic(panicSummationInvalid)
	}

	return func(o *Options) { o.summation = s }
}

// WithWorkers bounds the number of goroutines used to reduce column panels.
// n == 1 keeps the sequential reference path. Panics if n < 1.
//
// AI-Hints:
//   - Parallel output is bit-identical to sequential output; only wall time changes.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithParallel is shorthand for WithWorkers(runtime.GOMAXPROCS(0)).
// GOMAXPROCS is read each time the option is applied, so a reused option
// follows later changes to it.
func WithParallel() Option {
	return func(o *Options) { o.workers = max(runtime.GOMAXPROCS(0), 1) }
}

// WithMinParallelElements sets the r*c threshold under which reductions run
// inline even when workers > 1. Zero forces fan-out for any non-empty input.
// Panics if k < 0.
func WithMinParallelElements(k int) Option {
	if k < 0 {
		panic(panicMinParallelInvalid)
	}

	return func(o *Options) { o.minParallelElements = k }
}

// WithPanelWidth fixes the number of columns reduced together in one sweep
// over the rows of a row-major Dense, and the unit of work handed to each
// worker. Panics if w < 1.
func WithPanelWidth(w int) Option {
	if w < 1 {
		panic(panicPanelWidthInvalid)
	}

	return func(o *Options) { o.panelWidth = w }
}

// WithEmptyMean sets the value reported for every column when the matrix has
// zero rows. Any float64 is accepted, including NaN (the default) and ±Inf.
func WithEmptyMean(v float64) Option {
	return func(o *Options) { o.emptyMean = v }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		summation:           DefaultSummation,
		workers:             DefaultWorkers,
		minParallelElements: DefaultMinParallelElements,
		panelWidth:          DefaultPanelWidth,
		emptyMean:           DefaultEmptyMean,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults and
// finalizes derived values (auto panel width).
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins); nil setters are skipped.
//   - Stage 3: resolve panelWidth==0 to the CPU-derived width.
//
// Complexity: Time O(k), Space O(1) for k=len(opts).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.panelWidth == 0 {
		o.panelWidth = defaultPanelWidth()
	}

	return o
}

// NewOptions resolves opts into an effective configuration snapshot.
// Useful to inspect what a set of options amounts to before a hot loop.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Summation reports the configured accumulation strategy.
func (o Options) Summation() Summation { return o.summation }

// Workers reports the configured worker bound.
func (o Options) Workers() int { return o.workers }

// MinParallelElements reports the fan-out threshold.
func (o Options) MinParallelElements() int { return o.minParallelElements }

// PanelWidth reports the resolved panel width (never 0 after gatherOptions).
func (o Options) PanelWidth() int { return o.panelWidth }

// EmptyMean reports the value used for columns of a zero-row matrix.
func (o Options) EmptyMean() float64 { return o.emptyMean }
