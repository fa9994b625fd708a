// SPDX-License-Identifier: MIT

package matrix

// ColumnView is a read-only strided window over one column of a Dense.
// Element i lives at data[off + i*stride]. The zero value is an empty view.
type ColumnView struct {
	data   []float64
	off    int
	stride int
	n      int
}

// Len returns the number of elements in the column (the matrix row count).
func (v ColumnView) Len() int { return v.n }

// At returns element i of the column, or ErrOutOfRange.
func (v ColumnView) At(i int) (float64, error) {
	if i < 0 || i >= v.n {
		return 0, ErrOutOfRange
	}

	return v.data[v.off+i*v.stride], nil
}

// CopyTo copies up to len(dst) elements of the column into dst, first row
// first, and returns how many were copied.
func (v ColumnView) CopyTo(dst []float64) int {
	n := min(len(dst), v.n)
	if v.stride == 1 {
		return copy(dst[:n], v.data[v.off:v.off+n])
	}
	p := v.off
	for i := 0; i < n; i++ {
		dst[i] = v.data[p]
		p += v.stride
	}

	return n
}

// Sum accumulates the column first-to-last with the given strategy.
// An empty view sums to 0.
func (v ColumnView) Sum(s Summation) float64 {
	if s == SummationCompensated {
		return sumStridedCompensated(v.data, v.off, v.stride, v.n)
	}

	return sumStridedNaive(v.data, v.off, v.stride, v.n)
}

// Mean returns Sum(s) / Len(). An empty view yields NaN (0/0).
func (v ColumnView) Mean(s Summation) float64 {
	return v.Sum(s) / float64(v.n)
}
