// Command jbox clusters junction boxes read from a file and prints the two
// answers of the puzzle:
//
//	part 1: product of the three largest circuits after -merges connections
//	part 2: product of the -axis coordinates of the last pair needed to connect everything
//
// Usage:
//
//	jbox [flags] <input>
//
// The input holds one "x,y,z" row per line and may be zstd or lz4 compressed.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/unixpickle/essentials"

	"github.com/katalvlaran/jbox/cluster"
	"github.com/katalvlaran/jbox/distance"
	"github.com/katalvlaran/jbox/input"
)

func main() {
	var (
		merges  int
		axis    int
		workers int
		metric  string
		verbose bool
	)
	flag.IntVar(&merges, "merges", 1000, "number of nearest connections for part 1")
	flag.IntVar(&axis, "axis", 0, "coordinate axis multiplied for part 2")
	flag.IntVar(&workers, "workers", distance.DefaultWorkers, "distance workers (0 = GOMAXPROCS)")
	flag.StringVar(&metric, "metric", distance.MetricEuclidean, "euclidean, manhattan or chebyshev")
	flag.BoolVar(&verbose, "v", false, "log every connection")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: jbox [flags] <input>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := cluster.NewTextLogger(os.Stderr, level)

	m, ok := distance.MetricByName(metric)
	if !ok {
		essentials.Die("unknown metric:", metric)
	}
	if workers < 0 {
		essentials.Die("workers must be >= 0")
	}

	ps, err := input.Load(args[0])
	essentials.Must(err)
	logger.Info("points loaded", "points", ps.Len(), "dimension", ps.Dim())

	e, err := cluster.NewEngine(ps,
		cluster.WithLogger(logger),
		cluster.WithDistanceOptions(distance.WithMetric(m), distance.WithWorkers(workers)),
	)
	essentials.Must(err)

	part1, err := e.ProductAfter(min(merges, e.Order().Len()))
	essentials.Must(err)
	fmt.Println("Part 1:", part1)

	part2, err := e.SpanningAxisProduct(axis)
	essentials.Must(err)
	fmt.Printf("Part 2: %.0f\n", part2)
}
