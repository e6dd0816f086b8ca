// Package candidate produces the CandidateOrder of the clustering engine: every
// unordered pair of point indices together with its distance, sorted ascending.
//
// Determinism: pairs are enumerated by increasing I then increasing J, and a
// stable sort by distance keeps that enumeration order among equal distances.
// This decides which pair is reported as the connecting edge when distances tie.
package candidate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/jbox/distance"
)

// ErrNilTable is returned when Build receives a nil *distance.Table.
var ErrNilTable = errors.New("candidate: distance table is nil")

// ErrRange indicates an invalid [start, end) window over an Order.
var ErrRange = errors.New("candidate: invalid range")

// Pair is one candidate connection between points I and J (I < J).
type Pair struct {
	Distance float64
	I, J     int
}

// String renders the pair as "I-J (distance)".
func (p Pair) String() string {
	return fmt.Sprintf("%d-%d (%g)", p.I, p.J, p.Distance)
}

// Order is the fully materialized ascending sequence of candidate pairs.
type Order []Pair

// Build enumerates every off-diagonal pair of t and sorts it by ascending distance.
//
// Steps:
//  1. Validate t != nil.
//  2. Collect (D[i][j], i, j) for i < j, i ascending then j ascending.
//  3. sort.SliceStable by Distance so ties keep enumeration order.
//
// The result has exactly N·(N-1)/2 entries; self pairs are never produced.
// Complexity: O(N² log N) time, O(N²) memory.
func Build(t *distance.Table) (Order, error) {
	// 1. Validate.
	if t == nil {
		return nil, ErrNilTable
	}

	// 2. Enumerate the strict upper triangle.
	n := t.Len()
	order := make(Order, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := t.At(i, j)
			if err != nil {
				return nil, err
			}
			order = append(order, Pair{Distance: d, I: i, J: j})
		}
	}

	// 3. Stable sort keeps (i, j) enumeration order among equal distances.
	sort.SliceStable(order, func(a, b int) bool {
		return order[a].Distance < order[b].Distance
	})

	return order, nil
}

// Len returns the number of pairs.
func (o Order) Len() int { return len(o) }

// Slice returns the window [start, end) of o without copying.
// Returns ErrRange unless 0 ≤ start ≤ end ≤ Len().
func (o Order) Slice(start, end int) (Order, error) {
	if err := o.CheckRange(start, end); err != nil {
		return nil, err
	}

	return o[start:end], nil
}

// CheckRange reports whether [start, end) is a valid window over o.
func (o Order) CheckRange(start, end int) error {
	if start < 0 || end < start || end > len(o) {
		return fmt.Errorf("[%d,%d) over %d pairs: %w", start, end, len(o), ErrRange)
	}

	return nil
}

// Sorted reports whether o is non-decreasing in distance.
func (o Order) Sorted() bool {
	return sort.SliceIsSorted(o, func(a, b int) bool {
		return o[a].Distance < o[b].Distance
	})
}
