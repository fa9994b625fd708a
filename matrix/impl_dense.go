// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row- or column-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous float64 buffer plus (rows, cols, order) metadata.
//   - Guarantee safety at the public surface: At/Set/Col return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy column views (ColumnView) for reductions.
//   - Pass IEEE-754 special values (NaN, ±Inf) through untouched.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot reductions (see impl_colmeans.go): operate on the flat data slice directly.
//   - Use WrapDense to hand over a host buffer without copying; the reducers never write to it.
//   - Use ColMajor when the producer already stores columns contiguously.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Col: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxCol  = "Col" // method tag used in error wrappers
	ctxNew  = "NewDense"
	ctxData = "NewDenseFromData"
	ctxWrap = "WrapDense"
	ctxRows = "NewDenseFromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <err>" and keeps the sentinel for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete dense matrix over a flat float64 buffer.
//   - r,c hold dimensions (rows, cols); zero is allowed in either.
//   - data is a flat buffer of length r*c.
//   - order selects the offset formula: i*c + j (RowMajor) or j*r + i (ColMajor).
type Dense struct {
	r, c  int       // row and column counts (>=0)
	data  []float64 // contiguous storage (len == r*c)
	order Order     // storage layout
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Behavior highlights:
//   - Empty shapes (0×c, r×0, 0×0) are legal; the column reducers define
//     their result for them.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrBadShape when rows<0, cols<0 or rows*cols overflows int.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewDenseOrder(rows, cols, RowMajor)
}

// NewDenseOrder creates an r×c zero matrix with an explicit storage order.
//
// Errors:
//   - ErrBadShape when rows<0, cols<0 or order is not RowMajor/ColMajor.
func NewDenseOrder(rows, cols int, order Order) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	if !order.valid() {
		return nil, matrixErrorf(ctxNew, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), order: order}, nil
}

// NewDenseFromData copies data into a new rows×cols Dense stored in order.
//
// Implementation:
//   - Stage 1: ValidateDataLen (shape, nil buffer, exact length).
//   - Stage 2: allocate and copy; the caller keeps ownership of data.
//
// Errors:
//   - ErrBadShape, ErrNilData, ErrDataLength.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromData(rows, cols int, data []float64, order Order) (*Dense, error) {
	if err := ValidateDataLen(rows, cols, data); err != nil {
		return nil, matrixErrorf(ctxData, err)
	}
	if !order.valid() {
		return nil, matrixErrorf(ctxData, ErrBadShape)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf, order: order}, nil
}

// WrapDense builds a Dense that aliases data without copying.
//
// Behavior highlights:
//   - Zero-copy handoff of a host-owned buffer. Writes through Set are
//     visible to the caller and vice versa; the column reducers only read.
//
// Errors:
//   - ErrBadShape, ErrNilData, ErrDataLength.
//
// Complexity:
//   - Time O(1), Space O(1).
func WrapDense(rows, cols int, data []float64, order Order) (*Dense, error) {
	if err := ValidateDataLen(rows, cols, data); err != nil {
		return nil, matrixErrorf(ctxWrap, err)
	}
	if !order.valid() {
		return nil, matrixErrorf(ctxWrap, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: data, order: order}, nil
}

// NewDenseFromRows copies a sequence of equal-length rows into a row-major Dense.
//
// Behavior highlights:
//   - rows == nil is rejected (ErrNilData); an empty non-nil slice is 0×0.
//   - Ragged input is rejected with ErrRaggedRows naming the first bad row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	cols, err := ValidateRectangular(rows)
	if err != nil {
		return nil, matrixErrorf(ctxRows, err)
	}
	r := len(rows)
	buf := make([]float64, r*cols)
	for i := 0; i < r; i++ {
		copy(buf[i*cols:(i+1)*cols], rows[i])
	}

	return &Dense{r: r, c: cols, data: buf, order: RowMajor}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Order reports the storage layout.
func (m *Dense) Order() Order { return m.order }

// offset computes the flat offset of (row, col) for the current order.
// Callers must have bounds-checked row and col.
func (m *Dense) offset(row, col int) int {
	if m.order == ColMajor {
		return col*m.r + row
	}

	return row*m.c + col
}

// indexOf bounds-checks (row,col) and returns the flat offset, or a bare
// ErrOutOfRange that public methods wrap with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return m.offset(row, col), nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// NaN and ±Inf are stored as given.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same order).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, order: m.order}
}

// Col returns a read-only strided view of column j.
//
// Behavior highlights:
//   - No copy: the view reads the Dense buffer directly.
//   - ColMajor columns are contiguous (stride 1); RowMajor columns use stride c.
//
// Errors:
//   - ErrOutOfRange when j<0 or j>=Cols().
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Col(j int) (ColumnView, error) {
	if j < 0 || j >= m.c {
		return ColumnView{}, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return m.colView(j), nil
}

// colView builds the view for a column already known to be in range.
func (m *Dense) colView(j int) ColumnView {
	if m.order == ColMajor {
		return ColumnView{data: m.data, off: j * m.r, stride: 1, n: m.r}
	}

	return ColumnView{data: m.data, off: j, stride: m.c, n: m.r}
}

// String renders logical rows (independent of storage order) for diagnostics.
// Not for hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[m.offset(i, j)])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
