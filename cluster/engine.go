package cluster

import (
	"context"
	"fmt"

	"github.com/katalvlaran/jbox/candidate"
	"github.com/katalvlaran/jbox/distance"
	"github.com/katalvlaran/jbox/pointset"
)

// Engine wires the whole pipeline for one point set:
//
//	PointSet → distance.Table → candidate.Order → Builder (→ circuit.Forest)
//
// The table and order are computed once in NewEngine. A cursor into the order
// lets queries share the forest: ProductAfter(m) applies candidates up to m,
// and SpanningPair continues from there to the end.
type Engine struct {
	points  *pointset.PointSet
	table   *distance.Table
	order   candidate.Order
	builder *Builder
	cursor  int
}

// NewEngine builds the distance table and candidate order for ps.
// Distance options are passed with WithDistanceOptions.
//
// Errors: ErrNilPointSet, or any error of distance.Build / candidate.Build.
func NewEngine(ps *pointset.PointSet, opts ...Option) (*Engine, error) {
	if ps == nil {
		return nil, ErrNilPointSet
	}
	o := gatherOptions(opts...)

	table, err := distance.Build(ps, o.distance...)
	if err != nil {
		return nil, fmt.Errorf("cluster: distances: %w", err)
	}
	order, err := candidate.Build(table)
	if err != nil {
		return nil, fmt.Errorf("cluster: candidates: %w", err)
	}
	b, err := NewBuilder(ps.Len(), WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	o.logger.DebugContext(context.Background(), "engine ready",
		"points", ps.Len(),
		"dimension", ps.Dim(),
		"candidates", order.Len(),
	)

	return &Engine{points: ps, table: table, order: order, builder: b}, nil
}

// Advance applies candidates until `connections` of them have been consumed
// in total. Stops early (and fast-forwards the cursor) once fully connected,
// since every later candidate would be a no-op.
//
// Errors:
//   - ErrRange  : connections > Order().Len().
//   - ErrRewind : connections < Cursor().
func (e *Engine) Advance(connections int) error {
	if connections > e.order.Len() || connections < 0 {
		return fmt.Errorf("Engine.Advance(%d) over %d candidates: %w", connections, e.order.Len(), ErrRange)
	}
	if connections < e.cursor {
		return fmt.Errorf("Engine.Advance(%d) at cursor %d: %w", connections, e.cursor, ErrRewind)
	}
	if _, _, err := e.builder.Run(e.order, e.cursor, connections); err != nil {
		return err
	}
	e.cursor = connections

	return nil
}

// ProductAfter applies the `connections` nearest candidates (cumulatively)
// and returns the product of the three largest circuit sizes.
// Errors: those of Advance, and ErrTooFewCircuits.
func (e *Engine) ProductAfter(connections int) (int, error) {
	if err := e.Advance(connections); err != nil {
		return 0, err
	}

	return e.builder.TopThreeProduct()
}

// SpanningPair continues from the cursor until all points form one circuit
// and returns the pair whose connection achieved it. The boolean is false if
// the order ran out first (only possible for a single point).
func (e *Engine) SpanningPair() (candidate.Pair, bool, error) {
	p, ok, err := e.builder.Run(e.order, e.cursor, e.order.Len())
	if err != nil {
		return candidate.Pair{}, false, err
	}
	if ok {
		_, k, _ := e.builder.Spanning()
		e.cursor = max(e.cursor, k+1)
	} else {
		e.cursor = e.order.Len()
	}

	return p, ok, nil
}

// SpanningAxisProduct multiplies the coordinate along axis of both points of
// the spanning pair (e.g. the X coordinates of the last two boxes connected).
//
// Errors: ErrNotConnected, pointset.ErrOutOfRange for a bad axis.
func (e *Engine) SpanningAxisProduct(axis int) (float64, error) {
	p, ok, err := e.SpanningPair()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotConnected
	}
	a, err := e.points.Coord(p.I, axis)
	if err != nil {
		return 0, err
	}
	b, err := e.points.Coord(p.J, axis)
	if err != nil {
		return 0, err
	}

	return a * b, nil
}

// Cursor returns the position in Order() up to which candidates are applied.
func (e *Engine) Cursor() int { return e.cursor }

// Points returns the input point set.
func (e *Engine) Points() *pointset.PointSet { return e.points }

// Table returns the distance table.
func (e *Engine) Table() *distance.Table { return e.table }

// Order returns the candidate order. Callers must not modify it.
func (e *Engine) Order() candidate.Order { return e.order }

// Builder returns the builder holding the cumulative forest.
func (e *Engine) Builder() *Builder { return e.builder }
