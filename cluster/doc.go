// Package cluster drives connectivity clustering over a point set: it feeds
// candidate pairs, nearest first, into a circuit.Forest and answers the two
// queries of the junction-box puzzle.
//
// What & Why
//
//   - Builder.Run(order, start, end) applies a window of the candidate order.
//     State is cumulative, so "the first 1000 connections" and "continue until
//     everything is connected" share one forest and one distance computation.
//   - Builder.TopThreeProduct multiplies the sizes of the three largest
//     circuits; with fewer than three circuits it fails with ErrTooFewCircuits
//     instead of inventing missing sizes.
//   - Run reports the pair whose connection first leaves a single circuit
//     holding every point (the last edge Kruskal would need to span the set).
//
// Engine bundles PointSet → distance.Table → candidate.Order → Builder and keeps
// a cursor into the order:
//
//	e, _ := cluster.NewEngine(ps)
//	part1, _ := e.ProductAfter(1000)
//	part2, _ := e.SpanningAxisProduct(0)
//
// Concurrency: none. Connections are applied strictly in ascending-distance
// order by one caller; only distance.Build may run in parallel.
//
// Logging: events go to a *Logger (log/slog). The default discards them.
package cluster
