// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Hold the accumulation micro-kernels shared by ColumnView and the column reducers.
//   - Keep tight loops centralized so every path (view, row-major panel, At fallback)
//     adds the same elements in the same order.
//
// Determinism:
//   - Every kernel adds rows first-to-last. Naive kernels are bit-identical to
//     `s := 0.0; for i := range col { s += col[i] }`.
//
// Numeric notes:
//   - Compensated kernels use Neumaier's variant of Kahan summation. Once the
//     running sum is non-finite the compensation term is meaningless (Inf-Inf),
//     so finishCompensated returns the raw sum in that case; NaN and ±Inf
//     therefore propagate exactly as in the naive kernel.

package matrix

import "math"

// sumStridedNaive returns Σ data[off + i*stride] for i in [0, n).
// Complexity: O(n).
func sumStridedNaive(data []float64, off, stride, n int) float64 {
	s := 0.0
	if stride == 1 {
		for _, x := range data[off : off+n] {
			s += x
		}
		return s
	}
	p := off
	for i := 0; i < n; i++ {
		s += data[p]
		p += stride
	}

	return s
}

// sumStridedCompensated is the Neumaier counterpart of sumStridedNaive.
// Complexity: O(n).
func sumStridedCompensated(data []float64, off, stride, n int) float64 {
	var s, c float64
	p := off
	for i := 0; i < n; i++ {
		s, c = neumaierAdd(s, c, data[p])
		p += stride
	}

	return finishCompensated(s, c)
}

// neumaierAdd folds x into the running sum s with compensation c.
func neumaierAdd(s, c, x float64) (float64, float64) {
	t := s + x
	if math.Abs(s) >= math.Abs(x) {
		c += (s - t) + x
	} else {
		c += (x - t) + s
	}

	return t, c
}

// finishCompensated applies the compensation term unless the sum is non-finite.
func finishCompensated(s, c float64) float64 {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return s
	}

	return s + c
}

// accumulatePanelNaive adds rows [0, rows) of columns [j0, j1) of a row-major
// buffer with `cols` columns into sums[0:j1-j0].
//
// The row loop is outermost so the buffer streams once; each column still
// receives its elements in row order, which keeps the result identical to a
// per-column strided walk.
// Complexity: O(rows*(j1-j0)).
func accumulatePanelNaive(data []float64, rows, cols, j0, j1 int, sums []float64) {
	w := j1 - j0
	sums = sums[:w]
	for i := 0; i < rows; i++ {
		row := data[i*cols+j0 : i*cols+j1]
		for k, x := range row {
			sums[k] += x
		}
	}
}

// accumulatePanelCompensated is the Neumaier counterpart of
// accumulatePanelNaive; comp carries the per-column compensation terms.
// Call finishPanelCompensated once all rows are folded in.
// Complexity: O(rows*(j1-j0)).
func accumulatePanelCompensated(data []float64, rows, cols, j0, j1 int, sums, comp []float64) {
	w := j1 - j0
	sums, comp = sums[:w], comp[:w]
	for i := 0; i < rows; i++ {
		row := data[i*cols+j0 : i*cols+j1]
		for k, x := range row {
			sums[k], comp[k] = neumaierAdd(sums[k], comp[k], x)
		}
	}
}

// finishPanelCompensated folds comp into sums in place.
func finishPanelCompensated(sums, comp []float64) {
	for k := range sums {
		sums[k] = finishCompensated(sums[k], comp[k])
	}
}

// accumulateRowSetNaive is accumulatePanelNaive for a sequence-of-rows input
// already validated as rectangular.
// Complexity: O(len(rows)*(j1-j0)).
func accumulateRowSetNaive(rows [][]float64, j0, j1 int, sums []float64) {
	sums = sums[:j1-j0]
	for _, r := range rows {
		for k, x := range r[j0:j1] {
			sums[k] += x
		}
	}
}

// accumulateRowSetCompensated is the Neumaier counterpart of accumulateRowSetNaive.
// Complexity: O(len(rows)*(j1-j0)).
func accumulateRowSetCompensated(rows [][]float64, j0, j1 int, sums, comp []float64) {
	w := j1 - j0
	sums, comp = sums[:w], comp[:w]
	for _, r := range rows {
		for k, x := range r[j0:j1] {
			sums[k], comp[k] = neumaierAdd(sums[k], comp[k], x)
		}
	}
}
