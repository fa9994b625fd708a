// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Split the column range into contiguous panels and run a panel kernel over each.
//   - Fan panels out to a bounded errgroup when the caller asked for workers and the
//     input is large enough to pay for goroutine startup.
//
// Determinism:
//   - Panels are disjoint column ranges; every column is reduced by exactly one
//     kernel call with the same row order as the sequential path. Output is
//     bit-identical regardless of worker count or scheduling.

package matrix

import "golang.org/x/sync/errgroup"

// panelFunc reduces columns [j0, j1) and writes into the matching window of
// the output. Implementations must not touch columns outside their window.
type panelFunc func(j0, j1 int) error

// forEachPanel runs fn over [0, cols) in panels of o.panelWidth columns.
//
// Implementation:
//   - Stage 1: decide sequential vs parallel from workers and elems (r*c).
//   - Stage 2 (sequential): call fn left to right, stop at the first error.
//   - Stage 3 (parallel): narrow panels so every worker gets one, then fan out
//     with errgroup.SetLimit(workers); the first error wins.
//
// Complexity:
//   - O(cols/width) scheduling overhead on top of the kernels.
func forEachPanel(cols, elems int, o Options, fn panelFunc) error {
	width := max(o.panelWidth, 1)
	if o.workers <= 1 || elems < o.minParallelElements {
		for j0 := 0; j0 < cols; j0 += width {
			if err := fn(j0, min(j0+width, cols)); err != nil {
				return err
			}
		}
		return nil
	}

	// A few wide panels would leave workers idle; split finer when needed.
	if perWorker := (cols + o.workers - 1) / o.workers; perWorker < width {
		width = max(perWorker, 1)
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for j0 := 0; j0 < cols; j0 += width {
		j1 := min(j0+width, cols)
		g.Go(func() error { return fn(j0, j1) })
	}

	return g.Wait()
}
