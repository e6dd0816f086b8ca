// SPDX-License-Identifier: MIT

package distance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metric computes the distance between two coordinate vectors of equal length.
// Implementations must be symmetric and return 0 for identical inputs.
type Metric func(a, b []float64) float64

// Euclidean is the L2 norm of a-b. It is the default metric.
func Euclidean(a, b []float64) float64 { return floats.Distance(a, b, 2) }

// Manhattan is the L1 (city-block) norm of a-b.
func Manhattan(a, b []float64) float64 { return floats.Distance(a, b, 1) }

// Chebyshev is the L∞ norm of a-b (largest per-axis difference).
func Chebyshev(a, b []float64) float64 { return floats.Distance(a, b, math.Inf(1)) }

// MetricByName resolves "euclidean", "manhattan" or "chebyshev".
// The second result is false for unknown names.
func MetricByName(name string) (Metric, bool) {
	switch name {
	case MetricEuclidean:
		return Euclidean, true
	case MetricManhattan:
		return Manhattan, true
	case MetricChebyshev:
		return Chebyshev, true
	default:
		return nil, false
	}
}

// Metric names accepted by MetricByName.
const (
	MetricEuclidean = "euclidean"
	MetricManhattan = "manhattan"
	MetricChebyshev = "chebyshev"
)
