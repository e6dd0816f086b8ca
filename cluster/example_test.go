package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/jbox/cluster"
	"github.com/katalvlaran/jbox/pointset"
)

// ExampleEngine connects four boxes on a line: two close pairs, then the bridge.
func ExampleEngine() {
	// 1. Points 0–1 and 2–3 are mutually closest.
	ps, _ := pointset.New([][]float64{{0, 0, 0}, {1, 0, 0}, {10, 0, 0}, {11, 0, 0}})

	// 2. Distances and candidate order are computed once.
	e, err := cluster.NewEngine(ps)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Two connections leave two circuits.
	_ = e.Advance(2)
	fmt.Println("sizes:", e.Builder().Sizes())

	// 4. Continue until everything is connected.
	p, ok, _ := e.SpanningPair()
	fmt.Println("spanning:", p.I, p.J, ok)
	fmt.Println("sizes:", e.Builder().Sizes())
	// Output:
	// sizes: [2 2]
	// spanning: 1 2 true
	// sizes: [4]
}
