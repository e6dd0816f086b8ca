// Package jbox groups junction boxes in space into circuits by repeatedly
// connecting the nearest pair of boxes that is not yet directly connected.
//
// The engine is a Kruskal-style connectivity pass without materializing the
// spanning tree:
//
//	pointset/  — immutable N×D input points (parse, validate, copy-out access)
//	distance/  — symmetric N×N distance table, computed once (optionally in parallel)
//	candidate/ — every unordered pair, ascending by distance, stable tie-break
//	circuit/   — Circuit sets and the Forest disjoint-set manager (Connect)
//	cluster/   — Builder (resumable runs, top-k product, spanning pair) and Engine
//	input/     — plain / zstd / lz4 input files
//	cmd/jbox   — command line front end
//
// Quick example:
//
//	ps, _ := input.Load("boxes.txt")
//	e, _ := cluster.NewEngine(ps)
//	part1, _ := e.ProductAfter(1000)      // product of the 3 largest circuits
//	part2, _ := e.SpanningAxisProduct(0)  // X·X of the last pair that connects everything
//
// Everything after distance.Build is single-threaded and deterministic:
// connections are applied strictly in ascending-distance order.
package jbox
