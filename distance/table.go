// SPDX-License-Identifier: MIT

// Package distance - dense symmetric pairwise distance table.
//
// Purpose:
//   - Compute every pairwise distance over a PointSet exactly once.
//   - Store only the upper triangle (gonum SymDense); reads are symmetric by layout.
//   - Keep results deterministic: each cell is written by exactly one worker and
//     its value does not depend on scheduling.
//
// Complexity quicksheet:
//   - Build: O(N²·D) time, O(N²) memory; At: O(1); Symmetric: O(N²).

package distance

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/jbox/pointset"
)

const (
	ctxBuild = "Build" // method tag used in error wrappers
	ctxAt    = "At"
)

// Table is an N×N matrix of pairwise distances with D[i][i] == 0 and
// D[i][j] == D[j][i]. It is read-only after Build.
type Table struct {
	n   int
	sym *mat.SymDense
}

// Build computes metric(p_i, p_j) for every i ≤ j.
//
// Implementation:
//   - Stage 1: validate ps, resolve options.
//   - Stage 2: copy rows once, allocate an N×N SymDense.
//   - Stage 3: fill rows sequentially or over interleaved row stripes
//     (worker w owns rows w, w+W, w+2W, ...) so the triangular work is balanced.
//
// The diagonal is metric(p_i, p_i), which is 0 for any conforming Metric;
// it is not patched afterwards.
//
// Errors:
//   - ErrNilPointSet : ps == nil.
//   - ErrNonFinite   : the metric returned NaN, ±Inf or a negative value.
//
// Complexity: O(N²·D) time, O(N²) memory.
func Build(ps *pointset.PointSet, opts ...Option) (*Table, error) {
	// 1. Validate input.
	if ps == nil {
		return nil, ErrNilPointSet
	}
	o := gatherOptions(opts...)

	// 2. Prepare storage; rows are copied once so workers never touch the PointSet.
	n := ps.Len()
	rows := ps.Rows()
	sym := mat.NewSymDense(n, nil)

	// 3. Fill. Small tables stay on the calling goroutine.
	workers := min(o.workers, n/minRowsPerWorker)
	if workers <= 1 {
		if err := fillRows(sym, rows, o.metric, 0, 1); err != nil {
			return nil, err
		}

		return &Table{n: n, sym: sym}, nil
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy; go directive is below 1.22
		g.Go(func() error {
			return fillRows(sym, rows, o.metric, w, workers)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Table{n: n, sym: sym}, nil
}

// fillRows writes rows start, start+step, ... of the upper triangle.
// Distinct (start, step) stripes never write the same cell.
func fillRows(sym *mat.SymDense, rows [][]float64, metric Metric, start, step int) error {
	n := len(rows)
	for i := start; i < n; i += step {
		for j := i; j < n; j++ {
			d := metric(rows[i], rows[j])
			if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
				return tableErrorf(ctxBuild, i, j, ErrNonFinite)
			}
			sym.SetSym(i, j, d)
		}
	}

	return nil
}

// Len returns N, the number of points the table was built from.
func (t *Table) Len() int { return t.n }

// At returns D[i][j].
// Returns ErrOutOfRange when either index is outside [0, Len()).
func (t *Table) At(i, j int) (float64, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, tableErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return t.sym.At(i, j), nil
}

// Symmetric returns a copy of the underlying symmetric matrix for use with
// other gonum routines.
// Complexity: O(N²).
func (t *Table) Symmetric() *mat.SymDense {
	out := mat.NewSymDense(t.n, nil)
	out.CopySym(t.sym)

	return out
}
