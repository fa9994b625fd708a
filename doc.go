// Package colmeans is a small numeric kernel for per-column means of dense
// float64 matrices, meant to be called in-process by a host program that
// already holds the matrix.
//
// What it provides:
//
//	• Dense storage: row-major or column-major flat buffers, zero-copy wrapping
//	• Column views: strided, read-only windows over one column
//	• Reducers: ColMeans / ColSums with Dense fast paths and a generic fallback
//	• Host entry points: ColMeansRows ([][]float64) and ColMeansData (flat buffer)
//	• Optional column-panel parallelism and compensated summation
//
// Guarantees:
//
//   - Default results are bit-identical to the naive loop (sum rows first to
//     last, divide by the row count), for every layout and worker count.
//   - Zero rows yield NaN means; zero columns yield an empty slice.
//   - Malformed input returns an error matching matrix.ErrInvalidInput.
//
// Everything lives in one subpackage:
//
//	matrix/ — Dense, ColumnView, options, validators and the column reducers
//
// Quick example:
//
//	X, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
//	means, _ := matrix.ColMeans(X) // [3 4]
//
//	go get github.com/katalvlaran/colmeans/matrix
package colmeans
