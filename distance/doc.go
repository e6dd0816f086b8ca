// SPDX-License-Identifier: MIT

// Package distance builds the DistanceTable of the clustering engine: a dense,
// symmetric N×N matrix of pairwise distances over a pointset.PointSet.
//
// What & Why:
//
//	Every clustering query reads distances many times but the O(N²·D) cost of
//	computing them must be paid exactly once. Build computes the upper triangle
//	(i ≤ j) into a gonum SymDense, so D[i][j] == D[j][i] holds by layout and the
//	diagonal is metric(p, p) == 0 by construction.
//
// Metrics:
//
//	Euclidean (default) — L2, floats.Distance(a, b, 2)
//	Manhattan           — L1
//	Chebyshev           — L∞
//
// Concurrency:
//
//	Cells are independent, so Build may fill rows on several goroutines
//	(WithWorkers). Each cell has exactly one writer and the result is identical
//	to a sequential fill. The finished Table is read-only and safe for
//	concurrent readers.
//
// Errors:
//
//	ErrNilPointSet, ErrNonFinite (Build); ErrOutOfRange (At).
package distance
