package cluster

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/jbox/candidate"
	"github.com/katalvlaran/jbox/circuit"
)

// topK is the circuit count used by TopThreeProduct.
const topK = 3

// Builder drives a circuit.Forest by consuming windows of a candidate.Order.
// Its state is cumulative: successive Run calls continue the same forest, so a
// caller can apply a prefix for one query and resume for another without
// recomputing distances.
//
// A Builder is not safe for concurrent use; connections are order-dependent.
type Builder struct {
	forest   *circuit.Forest
	logger   *Logger
	consumed int // candidates passed to Connect so far

	spanning      candidate.Pair
	spanningIndex int
	spanned       bool
}

// NewBuilder returns a Builder over n points with an empty forest.
// Returns circuit.ErrEmpty when n <= 0.
func NewBuilder(n int, opts ...Option) (*Builder, error) {
	o := gatherOptions(opts...)
	f, err := circuit.NewForest(n)
	if err != nil {
		return nil, err
	}

	return &Builder{forest: f, logger: o.logger}, nil
}

// Run applies order[start:end] in ascending-distance order.
//
// After every connection that changes the forest it checks for full
// connectivity (one circuit holding all n points). On the first such
// connection it stops and returns that pair with true: the last edge needed
// to span every point. When start > 0 on a fresh forest this is the spanning
// edge of the suffix, not necessarily the largest spanning-tree edge.
//
// Running out of candidates without spanning is not an error: the result is
// (zero Pair, false, nil) and the caller may resume with a larger window.
// Once spanned, Run returns the recorded pair without consuming anything.
// A single-point forest never reports a pair: no connection is needed.
//
// Errors:
//   - ErrRange        : [start, end) is not a window of order.
//   - circuit errors  : a pair references points outside the forest
//     (the order was built from a different point set).
//
// Complexity: O((end-start)·α) amortized, plus O(|absorbed circuit|) per join.
func (b *Builder) Run(order candidate.Order, start, end int) (candidate.Pair, bool, error) {
	// 1. Validate the window.
	if err := order.CheckRange(start, end); err != nil {
		return candidate.Pair{}, false, fmt.Errorf("Builder.Run: %w: %w", ErrRange, err)
	}
	if b.spanned {
		return b.spanning, true, nil
	}

	// 2. Apply candidates strictly in order.
	ctx := context.Background()
	before := b.consumed
	for k := start; k < end; k++ {
		p := order[k]
		out, err := b.forest.Connect(p.I, p.J)
		if err != nil {
			return candidate.Pair{}, false, fmt.Errorf("Builder.Run: candidate %d: %w", k, err)
		}
		b.consumed++
		b.logger.LogConnect(ctx, p, out, b.forest.Len())

		// 3. Only a changing connection can complete the forest.
		if out.Changed() && b.forest.Complete() {
			b.spanning, b.spanningIndex, b.spanned = p, k, true
			b.logger.LogSpanning(ctx, p, k)
			b.logger.LogRun(ctx, start, end, b.consumed-before, b.forest.Len(), true)

			return p, true, nil
		}
	}
	b.logger.LogRun(ctx, start, end, b.consumed-before, b.forest.Len(), false)

	return candidate.Pair{}, false, nil
}

// Spanning returns the pair that completed the forest, its position in the
// order it came from, and whether completion has happened.
func (b *Builder) Spanning() (candidate.Pair, int, bool) {
	return b.spanning, b.spanningIndex, b.spanned
}

// Connections returns how many candidates have been applied across all runs.
func (b *Builder) Connections() int { return b.consumed }

// Forest exposes the underlying forest for inspection. Callers must not
// mutate it; all changes go through Run.
func (b *Builder) Forest() *circuit.Forest { return b.forest }

// Sizes returns the sizes of all live circuits, largest first.
func (b *Builder) Sizes() []int {
	sizes := b.forest.Sizes()
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// TopProduct returns the product of the k largest circuit sizes.
//
// Errors:
//   - ErrRange          : k <= 0.
//   - ErrTooFewCircuits : fewer than k circuits exist (no size-1 fallback).
func (b *Builder) TopProduct(k int) (int, error) {
	if k <= 0 {
		return 0, fmt.Errorf("Builder.TopProduct(%d): %w", k, ErrRange)
	}
	sizes := b.Sizes()
	if len(sizes) < k {
		return 0, fmt.Errorf("Builder.TopProduct(%d): %d circuits: %w", k, len(sizes), ErrTooFewCircuits)
	}

	product := 1
	for _, s := range sizes[:k] {
		product *= s
	}

	return product, nil
}

// TopThreeProduct returns the product of the three largest circuit sizes.
// Fails with ErrTooFewCircuits when fewer than three circuits exist.
func (b *Builder) TopThreeProduct() (int, error) {
	return b.TopProduct(topK)
}
