// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for input validation.
//  - Keep kernels/facades minimal by delegating nil/shape/raggedness checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - ValidateRectangular is O(rows); every other validator is O(1).
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Length).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Both an untyped nil interface and a typed-nil *Dense are rejected, so the
// kernels never dereference a nil receiver.
//
// Returns ErrNilMatrix on failure.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape – Ensures rows and cols are non-negative and rows*cols fits in int.
// Zero in either dimension is a legal (empty) shape.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}
	// rows*cols must not wrap, or an empty buffer would pass the length check.
	if cols != 0 && rows > math.MaxInt/cols {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("%dx%d overflows element count: %w", rows, cols, ErrBadShape))
	}

	return nil
}

// ValidateDataLen – Composite: Shape → non-nil buffer → len(data) == rows*cols.
//
// A nil buffer is accepted only for an empty shape (rows*cols == 0), which
// mirrors how a host hands over a zero-sized matrix.
//
// Errors: ErrBadShape, ErrNilData, ErrDataLength.
// Complexity: O(1).
func ValidateDataLen(rows, cols int, data []float64) error {
	if err := ValidateShape(rows, cols); err != nil {
		return validatorErrorf("ValidateDataLen", err)
	}
	n := rows * cols
	if data == nil && n > 0 {
		return validatorErrorf("ValidateDataLen", ErrNilData)
	}
	if len(data) != n {
		return validatorErrorf("ValidateDataLen",
			fmt.Errorf("got %d elements for %dx%d: %w", len(data), rows, cols, ErrDataLength))
	}

	return nil
}

// ValidateRectangular – Ensures a sequence-of-rows input is non-nil and every
// row has the same length as row 0.
//
// Returns the common row length (column count) on success. An empty, non-nil
// outer slice is a legal 0×0 matrix and yields cols == 0.
//
// Errors:
//   - ErrNilData when rows is nil.
//   - ErrRaggedRows naming the first offending row index.
//
// Complexity: O(rows).
func ValidateRectangular(rows [][]float64) (int, error) {
	if rows == nil {
		return 0, validatorErrorf("ValidateRectangular", ErrNilData)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return 0, validatorErrorf("ValidateRectangular",
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(rows[i]), cols, ErrRaggedRows))
		}
	}

	return cols, nil
}
