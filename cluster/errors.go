package cluster

import "errors"

var (
	// ErrTooFewCircuits indicates a top-k product over fewer than k circuits.
	// Missing circuits are never silently treated as size 1.
	ErrTooFewCircuits = errors.New("cluster: fewer circuits than requested")

	// ErrRange indicates an invalid candidate window or a non-positive k.
	ErrRange = errors.New("cluster: invalid range")

	// ErrRewind indicates a request for fewer connections than already applied;
	// the forest is cumulative and cannot be rolled back.
	ErrRewind = errors.New("cluster: cannot rewind applied connections")

	// ErrNotConnected indicates the candidates were exhausted without reaching
	// full connectivity (only returned by Engine.SpanningAxisProduct).
	ErrNotConnected = errors.New("cluster: points never became fully connected")

	// ErrNilPointSet is returned when NewEngine receives a nil point set.
	ErrNilPointSet = errors.New("cluster: point set is nil")
)
