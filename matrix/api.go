// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Public facade over the column reducers. Each entry point resolves options,
//     delegates to a private kernel and wraps failures with its operation tag.
//
// AI-Hints:
//   - Pass a *Dense to unlock the flat-buffer fast paths.
//   - Hosts holding a flat buffer should call ColMeansData (no copy) instead of
//     building a Dense first.
//   - Sanitize inputs first if NaN/Inf propagation is undesired downstream.

package matrix

import "fmt"

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ColMeans returns the arithmetic mean of every column of m.
//
//	out[j] = (Σ_i m[i,j]) / m.Rows()
//
// Behavior highlights:
//   - len(out) == m.Cols(); out[j] corresponds to column j.
//   - Rows are added first-to-last per column (SummationNaive by default), so the
//     result is bit-identical to the plain loop.
//   - m.Rows() == 0 yields NaN for every column (see WithEmptyMean).
//   - m.Cols() == 0 yields an empty, non-nil slice.
//   - NaN/±Inf propagate to their own column only.
//   - m is never written; out never aliases m's storage.
//
// Errors:
//   - ErrNilMatrix (matches ErrInvalidInput) for nil or typed-nil input.
//   - Wrapped At errors from non-Dense implementations.
//
// Complexity: Time O(r*c), Space O(c).
func ColMeans(m Matrix, opts ...Option) ([]float64, error) {
	out, err := colMeans(m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opColMeans, err)
	}

	return out, nil
}

// ColSums returns vector s where s[j] = Σ_i m[i,j].
// A matrix with zero rows sums to all zeros.
// Complexity: O(r*c).
func ColSums(m Matrix, opts ...Option) ([]float64, error) {
	out, err := colSums(m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	return out, nil
}

// ColMeansRows is ColMeans over a sequence of equal-length rows.
//
// Errors:
//   - ErrNilData when rows is nil; ErrRaggedRows when row lengths differ.
//     Both match ErrInvalidInput.
//
// Notes:
//   - An empty, non-nil rows slice is a 0×0 matrix and yields an empty result.
//   - rows is read directly; no intermediate Dense is built.
func ColMeansRows(rows [][]float64, opts ...Option) ([]float64, error) {
	out, err := colMeansRows(rows, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opColMeansRows, err)
	}

	return out, nil
}

// ColMeansData is ColMeans over a caller-owned flat buffer of rows*cols
// elements stored in the given order. data is read in place and never written.
//
// Errors:
//   - ErrBadShape, ErrNilData, ErrDataLength (all match ErrInvalidInput).
func ColMeansData(rows, cols int, data []float64, order Order, opts ...Option) ([]float64, error) {
	d, err := WrapDense(rows, cols, data, order)
	if err != nil {
		return nil, matrixErrorf(opColMeansData, err)
	}
	out, err := colMeans(d, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opColMeansData, err)
	}

	return out, nil
}
