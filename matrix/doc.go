// Package matrix computes per-column means of dense float64 matrices.
//
// The matrix package provides:
//
//   - Dense, a contiguous float64 buffer stored row-major or column-major,
//     with bounds-checked accessors and no-copy column views (ColumnView).
//   - ColMeans / ColSums, the column reducers, with fast paths for *Dense and
//     an At-based fallback for any other Matrix implementation.
//   - ColMeansRows and ColMeansData for hosts that hold a [][]float64 or a
//     raw flat buffer and want a result without building a Dense.
//
// Results are deterministic: each column is summed first row to last row in
// float64 and divided by the row count, so the default output is bit-identical
// to the straightforward loop whatever the storage order or worker count.
// A matrix with zero rows yields NaN means; zero columns yield an empty slice.
//
// Malformed input (nil, negative shape, wrong buffer length, ragged rows) is
// reported as an error matching ErrInvalidInput; nothing in this package panics
// on user data.
//
// See the examples in this package for usage patterns.
package matrix
