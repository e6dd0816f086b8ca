// Package pointset holds the immutable input of the clustering engine:
// N points of equal dimensionality, each identified by its insertion index.
//
// A PointSet is built once (New, FromRows, FromCoords3D or Parse) and is
// read-only thereafter. Coordinates live in a row-major gonum matrix; every
// accessor returns copies so that no caller can mutate the set.
//
// Validation happens at construction only:
//
//	rows == 0 or width == 0  → ErrEmpty
//	row width differs        → ErrRagged
//	NaN / ±Inf coordinate    → ErrNonFinite
//	non-numeric text field   → ErrSyntax (Parse only)
//
// Downstream packages (distance, candidate, circuit, cluster) assume a
// rectangular, finite matrix and do not re-validate it.
package pointset
