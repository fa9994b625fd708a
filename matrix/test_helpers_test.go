// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and reference computations for the reducers.
//   • Compare float vectors NaN-aware (go-cmp) and bit-exact (Float64bits).

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/colmeans/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the At-based fallback path in code under test.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c row-major *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS an r×c Dense from row-major values in the given order.
func NewFilledDense(t testing.TB, r, c int, rowMajor []float64, order matrix.Order) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseOrder(r, c, order)
	if err != nil {
		t.Fatalf("NewDenseOrder(%d,%d,%s): %v", r, c, order, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rowMajor[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// RandomRows RETURNS an r×c [][]float64 filled deterministically from seed.
// Magnitudes span several decades so summation order is observable in the bits.
func RandomRows(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.NormFloat64() * math.Pow(10, float64(rng.Intn(7)-3))
		}
	}

	return rows
}

// flatten RETURNS the row-major flat copy of rows.
func flatten(rows [][]float64) []float64 {
	var out []float64
	for _, r := range rows {
		out = append(out, r...)
	}

	return out
}

// naiveColMeans is the reference loop: per column, add rows first-to-last,
// then divide by the row count.
func naiveColMeans(rows [][]float64, cols int) []float64 {
	out := make([]float64, cols)
	var i, j int
	for j = 0; j < cols; j++ {
		s := 0.0
		for i = 0; i < len(rows); i++ {
			s += rows[i][j]
		}
		out[j] = s / float64(len(rows))
	}

	return out
}

// requireBitsEqual FAILS unless got and want have the same length and
// identical IEEE-754 bit patterns element by element.
func requireBitsEqual(t testing.TB, want, got []float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("length mismatch: want %d, got %d", len(want), len(got))
	}
	for j := range want {
		if math.Float64bits(want[j]) != math.Float64bits(got[j]) {
			t.Fatalf("element %d: want %v (%#x), got %v (%#x)",
				j, want[j], math.Float64bits(want[j]), got[j], math.Float64bits(got[j]))
		}
	}
}

// requireVecEqual FAILS unless got equals want, treating NaN == NaN.
func requireVecEqual(t testing.TB, want, got []float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateNaNs(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

// requireVecClose FAILS unless got is within (atol + rtol*|want|) of want.
func requireVecClose(t testing.TB, want, got []float64, rtol, atol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(rtol, atol), cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("vector not close (-want +got):\n%s", diff)
	}
}
