// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Specific input failures wrap ErrInvalidInput so
// callers can match either the exact cause or the whole class:
//
//	errors.Is(err, ErrRaggedRows)   // exact cause
//	errors.Is(err, ErrInvalidInput) // any malformed input
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> data length / raggedness -> index.

var (
	// ErrInvalidInput is the umbrella for every malformed-input condition:
	// nil matrix or buffer, negative shape, data length mismatch, ragged rows.
	ErrInvalidInput = errors.New("matrix: invalid input")

	// ErrNilMatrix indicates that a nil Matrix (untyped nil or typed-nil *Dense) was used.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidInput)

	// ErrNilData indicates that a nil backing buffer or nil row set was supplied.
	ErrNilData = fmt.Errorf("%w: nil data", ErrInvalidInput)

	// ErrBadShape is returned when requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = fmt.Errorf("%w: invalid shape", ErrInvalidInput)

	// ErrDataLength indicates that a flat buffer does not hold exactly rows*cols elements.
	ErrDataLength = fmt.Errorf("%w: data length does not match shape", ErrInvalidInput)

	// ErrRaggedRows indicates a sequence-of-rows input whose rows differ in length.
	ErrRaggedRows = fmt.Errorf("%w: ragged rows", ErrInvalidInput)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
