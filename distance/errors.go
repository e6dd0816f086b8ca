// SPDX-License-Identifier: MIT
// Package distance: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with %w) and tests
// match them with errors.Is. No public function panics on user input.

package distance

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPointSet is returned when Build receives a nil *pointset.PointSet.
	ErrNilPointSet = errors.New("distance: point set is nil")

	// ErrNonFinite signals that a metric produced NaN, ±Inf or a negative value.
	// With finite coordinates this only happens on overflow or a broken custom Metric.
	ErrNonFinite = errors.New("distance: metric produced a non-finite or negative value")

	// ErrOutOfRange indicates that a row or column index is outside [0, Len()).
	ErrOutOfRange = errors.New("distance: index out of range")
)

// tableErrorf attaches method context and coordinates to a sentinel.
func tableErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, i, j, err)
}
