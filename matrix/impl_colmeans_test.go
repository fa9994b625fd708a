// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colmeans/matrix"
)

var orders = []matrix.Order{matrix.RowMajor, matrix.ColMajor}

// ------------------------------
// Concrete scenarios
// ------------------------------

func TestColMeans_Scenarios(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rows [][]float64
		want []float64
	}{
		{"3x2", [][]float64{{1, 2}, {3, 4}, {5, 6}}, []float64{3, 4}},
		{"single row", [][]float64{{7, 8, 9}}, []float64{7, 8, 9}},
		{"single column", [][]float64{{1}, {2}, {3}, {4}}, []float64{2.5}},
		{"all zeros", [][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, []float64{0, 0, 0, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, c := len(tc.rows), len(tc.rows[0])
			for _, order := range orders {
				X := NewFilledDense(t, r, c, flatten(tc.rows), order)

				got, err := matrix.ColMeans(X)
				require.NoError(t, err)
				require.Equal(t, tc.want, got, "order=%s", order)

				got, err = matrix.ColMeans(hide{X})
				require.NoError(t, err)
				require.Equal(t, tc.want, got, "fallback order=%s", order)
			}

			got, err := matrix.ColMeansRows(tc.rows)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestColMeans_NaNStaysInItsColumn(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{1, 2, 3},
		{4, math.NaN(), 6},
		{7, 8, 9},
	}
	for _, order := range orders {
		X := NewFilledDense(t, 3, 3, flatten(rows), order)
		got, err := matrix.ColMeans(X)
		require.NoError(t, err)
		require.Equal(t, 4.0, got[0])
		require.True(t, math.IsNaN(got[1]), "column 1 must be NaN, got %v", got[1])
		require.Equal(t, 6.0, got[2])
	}
}

func TestColMeans_InfinityPropagates(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{
		math.Inf(1), math.Inf(1), 1,
		1, math.Inf(-1), 1,
	}, matrix.RowMajor)

	got, err := matrix.ColMeans(X)
	require.NoError(t, err)
	require.True(t, math.IsInf(got[0], 1))
	require.True(t, math.IsNaN(got[1])) // +Inf + -Inf
	require.Equal(t, 1.0, got[2])
}

// ------------------------------
// Boundaries
// ------------------------------

func TestColMeans_ZeroRowsYieldNaN(t *testing.T) {
	t.Parallel()

	for _, order := range orders {
		X, err := matrix.NewDenseOrder(0, 4, order)
		require.NoError(t, err)

		got, err := matrix.ColMeans(X)
		require.NoError(t, err)
		require.Len(t, got, 4)
		for j, v := range got {
			require.True(t, math.IsNaN(v), "col %d: want NaN, got %v", j, v)
		}

		got, err = matrix.ColMeans(hide{X})
		require.NoError(t, err)
		requireVecEqual(t, []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}, got)
	}
}

func TestColMeans_ZeroRowsCustomPolicy(t *testing.T) {
	t.Parallel()

	X := MustDense(t, 0, 2)
	got, err := matrix.ColMeans(X, matrix.WithEmptyMean(0))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, got)

	sums, err := matrix.ColSums(X)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, sums)
}

func TestColMeans_ZeroColsYieldEmpty(t *testing.T) {
	t.Parallel()

	for _, r := range []int{0, 1, 5} {
		X := MustDense(t, r, 0)
		got, err := matrix.ColMeans(X)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	}

	got, err := matrix.ColMeansRows([][]float64{{}, {}, {}})
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = matrix.ColMeansRows([][]float64{})
	require.NoError(t, err)
	require.Empty(t, got)
}

// ------------------------------
// Properties
// ------------------------------

func TestColMeans_MatchesNaiveLoopBitwise(t *testing.T) {
	t.Parallel()

	shapes := [][2]int{{1, 1}, {2, 7}, {17, 3}, {64, 65}, {129, 600}}
	for k, sh := range shapes {
		r, c := sh[0], sh[1]
		rows := RandomRows(r, c, int64(100+k))
		want := naiveColMeans(rows, c)

		for _, order := range orders {
			X := NewFilledDense(t, r, c, flatten(rows), order)

			got, err := matrix.ColMeans(X)
			require.NoError(t, err)
			require.Len(t, got, c)
			requireBitsEqual(t, want, got)

			got, err = matrix.ColMeans(hide{X})
			require.NoError(t, err)
			requireBitsEqual(t, want, got)
		}

		got, err := matrix.ColMeansRows(rows)
		require.NoError(t, err)
		requireBitsEqual(t, want, got)

		got, err = matrix.ColMeansData(r, c, flatten(rows), matrix.RowMajor)
		require.NoError(t, err)
		requireBitsEqual(t, want, got)
	}
}

func TestColMeans_Idempotent(t *testing.T) {
	t.Parallel()

	rows := RandomRows(40, 30, 7)
	X := NewFilledDense(t, 40, 30, flatten(rows), matrix.RowMajor)

	a, err := matrix.ColMeans(X)
	require.NoError(t, err)
	b, err := matrix.ColMeans(X)
	require.NoError(t, err)
	requireBitsEqual(t, a, b)
}

func TestColMeans_DoesNotMutateOrAliasInput(t *testing.T) {
	t.Parallel()

	data := flatten(RandomRows(5, 5, 3))
	before := append([]float64(nil), data...)

	for _, order := range orders {
		got, err := matrix.ColMeansData(5, 5, data, order)
		require.NoError(t, err)
		requireBitsEqual(t, before, data)

		for j := range got {
			got[j] = -12345
		}
		requireBitsEqual(t, before, data)
	}
}

func TestColSums_MatchesMeansTimesRows(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 2, []float64{1, 2, 3, 4, 5, 6}, matrix.ColMajor)
	sums, err := matrix.ColSums(X)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 12}, sums)

	sums, err = matrix.ColSums(hide{X})
	require.NoError(t, err)
	require.Equal(t, []float64{9, 12}, sums)
}

// ------------------------------
// Compensated summation
// ------------------------------

func TestColMeans_CompensatedRecoversCancellation(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1e100, 1}, {1, 2}, {-1e100, 3}}

	naive, err := matrix.ColMeansRows(rows)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2}, naive)

	for _, order := range orders {
		X := NewFilledDense(t, 3, 2, flatten(rows), order)
		for _, m := range []matrix.Matrix{X, hide{X}} {
			got, err := matrix.ColMeans(m, matrix.WithSummation(matrix.SummationCompensated))
			require.NoError(t, err)
			require.Equal(t, []float64{1.0 / 3.0, 2}, got)
		}
	}

	got, err := matrix.ColMeansRows(rows, matrix.WithSummation(matrix.SummationCompensated))
	require.NoError(t, err)
	require.Equal(t, []float64{1.0 / 3.0, 2}, got)
}

func TestColMeans_CompensatedKeepsSpecialValues(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{math.Inf(1), math.NaN(), math.Inf(-1), 1},
		{1, 1, 1, 2},
	}
	got, err := matrix.ColMeansRows(rows, matrix.WithSummation(matrix.SummationCompensated))
	require.NoError(t, err)
	requireVecEqual(t, []float64{math.Inf(1), math.NaN(), math.Inf(-1), 1.5}, got)
}

func TestColMeans_CompensatedCloseToNaive(t *testing.T) {
	t.Parallel()

	rows := RandomRows(200, 50, 99)
	want := naiveColMeans(rows, 50)
	got, err := matrix.ColMeansRows(rows, matrix.WithSummation(matrix.SummationCompensated))
	require.NoError(t, err)
	requireVecClose(t, want, got, 1e-9, 1e-9)
}

// ------------------------------
// Errors
// ------------------------------

// faulty reports a fixed error from At at one coordinate.
type faulty struct {
	matrix.Matrix
	row, col int
}

var errBoom = errors.New("boom")

func (f faulty) At(i, j int) (float64, error) {
	if i == f.row && j == f.col {
		return 0, errBoom
	}

	return f.Matrix.At(i, j)
}

func TestColMeans_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.ColMeans(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, err, matrix.ErrInvalidInput)

	var typedNil *matrix.Dense
	_, err = matrix.ColMeans(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.ColSums(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidInput)

	_, err = matrix.ColMeans(faulty{Matrix: MustDense(t, 3, 3), row: 2, col: 1})
	require.ErrorIs(t, err, errBoom)
	require.Contains(t, err.Error(), "ColMeans")
}

// badShape reports arbitrary dimensions over a real matrix.
type badShape struct {
	matrix.Matrix
	rows, cols int
}

func (b badShape) Rows() int { return b.rows }
func (b badShape) Cols() int { return b.cols }

func TestColMeans_RejectsBadReportedShape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		rows, cols int
	}{
		{"negative cols", 2, -1},
		{"negative rows", -1, 3},
		{"overflowing product", math.MaxInt/4 + 1, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			X := badShape{Matrix: MustDense(t, 2, 3), rows: tc.rows, cols: tc.cols}

			_, err := matrix.ColMeans(X)
			require.ErrorIs(t, err, matrix.ErrBadShape)
			require.ErrorIs(t, err, matrix.ErrInvalidInput)
			require.Contains(t, err.Error(), "ColMeans")

			_, err = matrix.ColSums(X)
			require.ErrorIs(t, err, matrix.ErrBadShape)
			require.Contains(t, err.Error(), "ColSums")

			_, err = matrix.ColMeans(X, matrix.WithSummation(matrix.SummationCompensated))
			require.ErrorIs(t, err, matrix.ErrBadShape)
		})
	}
}

func TestColMeansRows_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.ColMeansRows(nil)
	require.ErrorIs(t, err, matrix.ErrNilData)
	require.ErrorIs(t, err, matrix.ErrInvalidInput)

	_, err = matrix.ColMeansRows([][]float64{{1, 2}, {3, 4}, {5}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
	require.ErrorIs(t, err, matrix.ErrInvalidInput)
	require.Contains(t, err.Error(), "row 2")
}

func TestColMeansData_Validation(t *testing.T) {
	t.Parallel()

	_, err := matrix.ColMeansData(2, 2, []float64{1, 2, 3}, matrix.RowMajor)
	require.ErrorIs(t, err, matrix.ErrDataLength)

	_, err = matrix.ColMeansData(-1, 2, nil, matrix.RowMajor)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.ColMeansData(2, 2, nil, matrix.ColMajor)
	require.ErrorIs(t, err, matrix.ErrNilData)

	_, err = matrix.ColMeansData(math.MaxInt/4+1, 4, nil, matrix.RowMajor)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.ErrorIs(t, err, matrix.ErrInvalidInput)

	for _, err := range []error{matrix.ErrDataLength, matrix.ErrBadShape, matrix.ErrNilData} {
		require.ErrorIs(t, err, matrix.ErrInvalidInput)
	}

	got, err := matrix.ColMeansData(0, 0, nil, matrix.RowMajor)
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = matrix.ColMeansData(0, 3, nil, matrix.RowMajor)
	require.NoError(t, err)
	requireVecEqual(t, []float64{math.NaN(), math.NaN(), math.NaN()}, got)
}
