package pointset

import "errors"

// Sentinel errors for point set construction and access.
// Callers match them with errors.Is; wrapped variants carry row/line context.
var (
	// ErrEmpty indicates the input has no rows, or rows of zero width.
	ErrEmpty = errors.New("pointset: at least one point with at least one coordinate is required")

	// ErrRagged indicates rows of differing dimensionality.
	ErrRagged = errors.New("pointset: all points must have the same dimensionality")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("pointset: coordinate is NaN or Inf")

	// ErrOutOfRange indicates a point index or axis outside valid bounds.
	ErrOutOfRange = errors.New("pointset: index out of range")

	// ErrSyntax indicates a field that could not be parsed as a number.
	ErrSyntax = errors.New("pointset: malformed coordinate")
)
