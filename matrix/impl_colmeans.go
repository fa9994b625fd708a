// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Reduce every column of a dense matrix to its sum and its arithmetic mean.
//   - Keep one accumulation order (rows first-to-last within each column) across
//     all storage layouts and execution modes.
//
// Exposed API (see api.go):
//   - ColSums(X)          -> sums  (len = Cols)
//   - ColMeans(X)         -> means (len = Cols)
//   - ColMeansRows(rows)  -> means over a sequence-of-rows input
//   - ColMeansData(...)   -> means over a caller-owned flat buffer, no copy
//
// Execution paths:
//   - *Dense RowMajor: stream rows once per column panel, accumulating into the
//     panel window of the output.
//   - *Dense ColMajor: each column is contiguous; reduce it via ColumnView.
//   - Any other Matrix: At(i,j) fallback with full error propagation, sequential.
//
// Policies:
//   - Zero columns: empty, non-nil result.
//   - Zero rows: sums are 0; means are Options.EmptyMean (NaN by default).
//   - Means are sum / float64(rows), a true division, so the naive path matches
//     the reference loop bit for bit.
//   - Input is never written; the output never aliases the input.

package matrix

// Operation name constants for unified error wrapping.
const (
	opColSums      = "ColSums"
	opColMeans     = "ColMeans"
	opColMeansRows = "ColMeansRows"
	opColMeansData = "ColMeansData"
)

// colSums accumulates per-column sums of X into a fresh slice.
//
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateShape on the reported dimensions;
//     allocate the output (len=c) up front.
//   - Stage 2: empty shapes return the zero sums immediately.
//   - Stage 3: dispatch on the concrete type (Dense fast paths; At fallback).
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (negative or overflowing dimensions),
//     wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c) (+ O(panel width) scratch per panel when compensated).
func colSums(X Matrix, o Options) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, err
	}

	r, c := X.Rows(), X.Cols()
	// Non-Dense implementations report their own dimensions; trust none of them.
	if err := ValidateShape(r, c); err != nil {
		return nil, err
	}
	sums := make([]float64, c) // always the correct length for callers
	if r == 0 || c == 0 {
		return sums, nil
	}

	if d, ok := X.(*Dense); ok {
		return sums, sumDense(d, sums, o)
	}

	return sums, sumFallback(X, sums, o)
}

// sumDense is the *Dense fast path. sums has len == d.c and is zeroed.
func sumDense(d *Dense, sums []float64, o Options) error {
	r, c := d.r, d.c

	if d.order == ColMajor {
		return forEachPanel(c, r*c, o, func(j0, j1 int) error {
			for j := j0; j < j1; j++ {
				sums[j] = d.colView(j).Sum(o.summation)
			}
			return nil
		})
	}

	return forEachPanel(c, r*c, o, func(j0, j1 int) error {
		window := sums[j0:j1]
		if o.summation == SummationCompensated {
			comp := make([]float64, j1-j0)
			accumulatePanelCompensated(d.data, r, c, j0, j1, window, comp)
			finishPanelCompensated(window, comp)
			return nil
		}
		accumulatePanelNaive(d.data, r, c, j0, j1, window)
		return nil
	})
}

// sumFallback reads X through At in fixed i→j order. It stays sequential:
// an arbitrary Matrix makes no promise that concurrent At calls are safe.
func sumFallback(X Matrix, sums []float64, o Options) error {
	r, c := X.Rows(), X.Cols()
	var i, j int
	var v float64
	var err error

	if o.summation == SummationCompensated {
		comp := make([]float64, c)
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return err
				}
				sums[j], comp[j] = neumaierAdd(sums[j], comp[j], v)
			}
		}
		finishPanelCompensated(sums, comp)
		return nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return err
			}
			sums[j] += v
		}
	}

	return nil
}

// sumsToMeans divides sums by rows in place, or fills EmptyMean when rows==0.
func sumsToMeans(sums []float64, rows int, o Options) []float64 {
	if rows == 0 {
		for j := range sums {
			sums[j] = o.emptyMean
		}
		return sums
	}
	n := float64(rows)
	for j := range sums {
		sums[j] /= n
	}

	return sums
}

// colMeans computes out[j] = Σ_i X[i,j] / r.
//
// Returns:
//   - []float64: means (len=c), freshly allocated.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape; wrapped At errors from the fallback path.
//
// Determinism:
//   - Fixed per-column row order; identical across layouts and worker counts.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func colMeans(X Matrix, o Options) ([]float64, error) {
	sums, err := colSums(X, o)
	if err != nil {
		return nil, err
	}

	return sumsToMeans(sums, X.Rows(), o), nil
}

// colMeansRows reduces a sequence-of-rows input without materializing a Dense.
//
// Errors:
//   - ErrNilData (rows == nil), ErrRaggedRows.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func colMeansRows(rows [][]float64, o Options) ([]float64, error) {
	c, err := ValidateRectangular(rows)
	if err != nil {
		return nil, err
	}
	r := len(rows)
	sums := make([]float64, c)
	if r == 0 || c == 0 {
		return sumsToMeans(sums, r, o), nil
	}

	err = forEachPanel(c, r*c, o, func(j0, j1 int) error {
		window := sums[j0:j1]
		if o.summation == SummationCompensated {
			comp := make([]float64, j1-j0)
			accumulateRowSetCompensated(rows, j0, j1, window, comp)
			finishPanelCompensated(window, comp)
			return nil
		}
		accumulateRowSetNaive(rows, j0, j1, window)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sumsToMeans(sums, r, o), nil
}
