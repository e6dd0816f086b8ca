package pointset

import (
	"fmt"
	"math"

	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"
)

// Number is any integer or floating-point coordinate type accepted by FromRows.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is a copy of one row of a PointSet together with its stable index.
type Point struct {
	Index  int       // position of insertion, in [0, Len())
	Coords []float64 // owned copy; mutating it does not affect the set
}

// PointSet is an immutable N×D collection of coordinate vectors.
// Row i of the backing matrix is the point with index i.
type PointSet struct {
	n, dim int
	coords *mat.Dense // row-major N×D, never exposed mutably
}

// New builds a PointSet from rows of coordinates.
// The input is copied; later changes to rows do not affect the set.
//
// Errors:
//   - ErrEmpty     : len(rows)==0 or the first row has no coordinates.
//   - ErrRagged    : a row length differs from the first row.
//   - ErrNonFinite : a coordinate is NaN or ±Inf.
//
// Complexity: O(N·D).
func New(rows [][]float64) (*PointSet, error) {
	// 1. Validate shape against the first row.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	n, dim := len(rows), len(rows[0])

	// 2. Copy into a flat row-major buffer, validating as we go.
	data := make([]float64, 0, n*dim)
	for i, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("row %d has %d coordinates, want %d: %w", i, len(row), dim, ErrRagged)
		}
		for axis, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("row %d axis %d: %w", i, axis, ErrNonFinite)
			}
		}
		data = append(data, row...)
	}

	return &PointSet{n: n, dim: dim, coords: mat.NewDense(n, dim, data)}, nil
}

// FromRows converts rows of any numeric type and delegates to New.
// Integer puzzle input can be passed without a conversion loop at the call site.
func FromRows[T Number](rows [][]T) (*PointSet, error) {
	converted := make([][]float64, len(rows))
	for i, row := range rows {
		converted[i] = make([]float64, len(row))
		for j, v := range row {
			converted[i][j] = float64(v)
		}
	}

	return New(converted)
}

// FromCoords3D builds a 3-D PointSet from model3d coordinates.
func FromCoords3D(coords []model3d.Coord3D) (*PointSet, error) {
	rows := make([][]float64, len(coords))
	for i, c := range coords {
		rows[i] = []float64{c.X, c.Y, c.Z}
	}

	return New(rows)
}

// Len returns the number of points N.
func (ps *PointSet) Len() int { return ps.n }

// Dim returns the dimensionality D shared by all points.
func (ps *PointSet) Dim() int { return ps.dim }

// Point returns a copy of the point at index i.
func (ps *PointSet) Point(i int) (Point, error) {
	if i < 0 || i >= ps.n {
		return Point{}, fmt.Errorf("PointSet.Point(%d): %w", i, ErrOutOfRange)
	}
	coords := make([]float64, ps.dim)
	copy(coords, ps.coords.RawRowView(i))

	return Point{Index: i, Coords: coords}, nil
}

// Coord returns the coordinate of point i along axis.
func (ps *PointSet) Coord(i, axis int) (float64, error) {
	if i < 0 || i >= ps.n || axis < 0 || axis >= ps.dim {
		return 0, fmt.Errorf("PointSet.Coord(%d,%d): %w", i, axis, ErrOutOfRange)
	}

	return ps.coords.At(i, axis), nil
}

// Rows returns a deep copy of all coordinates, one slice per point.
// Complexity: O(N·D).
func (ps *PointSet) Rows() [][]float64 {
	out := make([][]float64, ps.n)
	for i := range out {
		out[i] = make([]float64, ps.dim)
		copy(out[i], ps.coords.RawRowView(i))
	}

	return out
}

// Matrix returns a copy of the backing N×D matrix.
func (ps *PointSet) Matrix() *mat.Dense {
	return mat.DenseCopyOf(ps.coords)
}
