package circuit

import "errors"

var (
	// ErrEmpty indicates a Forest over zero points was requested.
	ErrEmpty = errors.New("circuit: forest needs at least one point")

	// ErrOutOfRange indicates a point index outside [0, n).
	ErrOutOfRange = errors.New("circuit: point index out of range")

	// ErrSelfPair indicates Connect was asked to link a point to itself.
	ErrSelfPair = errors.New("circuit: cannot connect a point to itself")

	// ErrInconsistent indicates the point→circuit map and circuit members disagree.
	// It is only reported by Validate and signals a bug, never a user error.
	ErrInconsistent = errors.New("circuit: index map and circuit members disagree")
)
