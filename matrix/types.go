// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage and reduction kernels.
// This file contains ONLY domain-facing types (the Matrix surface, storage
// order, summation strategy). Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// The column-mean kernels only read through Rows/Cols/At; Set and Clone are
// part of the surface so callers can hand in their own storage layouts.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Order describes how a Dense lays out its flat buffer.
type Order uint8

const (
	// RowMajor stores row i contiguously: offset = i*cols + j.
	RowMajor Order = iota
	// ColMajor stores column j contiguously: offset = j*rows + i.
	ColMajor
)

// String returns a stable name for the order.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown-order"
	}
}

// valid reports whether o is one of the declared orders.
func (o Order) valid() bool { return o == RowMajor || o == ColMajor }

// Summation selects the accumulation strategy used for column sums.
type Summation uint8

const (
	// SummationNaive adds elements first-to-last in a single float64
	// accumulator. Results are bit-identical to the plain loop.
	SummationNaive Summation = iota

	// SummationCompensated uses Neumaier's compensated summation.
	// More accurate on ill-conditioned columns, NOT bit-identical to naive.
	SummationCompensated
)

// String returns a stable name for the summation strategy.
func (s Summation) String() string {
	switch s {
	case SummationNaive:
		return "naive"
	case SummationCompensated:
		return "compensated"
	default:
		return "unknown-summation"
	}
}

func (s Summation) valid() bool { return s == SummationNaive || s == SummationCompensated }
