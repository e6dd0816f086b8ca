// SPDX-License-Identifier: MIT

package distance_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jbox/distance"
	"github.com/katalvlaran/jbox/internal/fixture"
	"github.com/katalvlaran/jbox/pointset"
)

// mustBoxes parses the 20-point worked example or fails the test.
func mustBoxes(t testing.TB) *pointset.PointSet {
	t.Helper()
	ps, err := pointset.Parse(strings.NewReader(fixture.JunctionBoxes))
	require.NoError(t, err)

	return ps
}

// randomPoints returns n deterministic 3-D points in [0,1000)³.
func randomPoints(t testing.TB, n int) *pointset.PointSet {
	t.Helper()
	r := rand.New(rand.NewSource(42))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{r.Float64() * 1000, r.Float64() * 1000, r.Float64() * 1000}
	}
	ps, err := pointset.New(rows)
	require.NoError(t, err)

	return ps
}

// TestBuild_SymmetricZeroDiagonal checks D[i][i]==0 and D[i][j]==D[j][i].
func TestBuild_SymmetricZeroDiagonal(t *testing.T) {
	tbl, err := distance.Build(mustBoxes(t))
	require.NoError(t, err)
	require.Equal(t, 20, tbl.Len())

	for i := 0; i < tbl.Len(); i++ {
		d, err := tbl.At(i, i)
		require.NoError(t, err)
		assert.Zero(t, d, "diagonal (%d,%d)", i, i)
		for j := i + 1; j < tbl.Len(); j++ {
			a, _ := tbl.At(i, j)
			b, _ := tbl.At(j, i)
			assert.Equal(t, a, b, "symmetry (%d,%d)", i, j)
			assert.Greater(t, a, 0.0)
		}
	}
}

// TestBuild_KnownDistance: boxes 7 (431,825,988) and 19 (425,690,689) are ⌊328.1⌋ apart.
func TestBuild_KnownDistance(t *testing.T) {
	tbl, err := distance.Build(mustBoxes(t))
	require.NoError(t, err)

	d, err := tbl.At(7, 19)
	require.NoError(t, err)
	assert.Equal(t, 328, int(d))
	assert.InDelta(t, math.Sqrt(6*6+135*135+299*299), d, 1e-9)
}

func TestBuild_Metrics(t *testing.T) {
	ps, err := pointset.New([][]float64{{0, 0}, {3, 4}})
	require.NoError(t, err)

	cases := []struct {
		name string
		want float64
	}{
		{distance.MetricEuclidean, 5},
		{distance.MetricManhattan, 7},
		{distance.MetricChebyshev, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := distance.MetricByName(tc.name)
			require.True(t, ok)
			tbl, err := distance.Build(ps, distance.WithMetric(m))
			require.NoError(t, err)
			d, _ := tbl.At(1, 0)
			assert.InDelta(t, tc.want, d, 1e-12)
		})
	}

	_, ok := distance.MetricByName("cosine")
	assert.False(t, ok)
}

// TestBuild_ParallelMatchesSequential compares a striped fill against a single worker.
func TestBuild_ParallelMatchesSequential(t *testing.T) {
	ps := randomPoints(t, 300)

	seq, err := distance.Build(ps, distance.WithWorkers(1))
	require.NoError(t, err)
	par, err := distance.Build(ps, distance.WithWorkers(4))
	require.NoError(t, err)

	for i := 0; i < ps.Len(); i++ {
		for j := 0; j < ps.Len(); j++ {
			a, _ := seq.At(i, j)
			b, _ := par.At(i, j)
			require.Equal(t, a, b, "(%d,%d)", i, j)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := distance.Build(nil)
	assert.ErrorIs(t, err, distance.ErrNilPointSet)

	negative := func(a, b []float64) float64 { return -1 }
	_, err = distance.Build(mustBoxes(t), distance.WithMetric(negative))
	assert.ErrorIs(t, err, distance.ErrNonFinite)

	// Overflow of the squared sum yields +Inf under L2.
	ps, err := pointset.New([][]float64{{0}, {math.MaxFloat64}, {-math.MaxFloat64}})
	require.NoError(t, err)
	_, err = distance.Build(ps)
	assert.ErrorIs(t, err, distance.ErrNonFinite)

	tbl, err := distance.Build(mustBoxes(t))
	require.NoError(t, err)
	_, err = tbl.At(-1, 0)
	assert.ErrorIs(t, err, distance.ErrOutOfRange)
	_, err = tbl.At(0, 20)
	assert.ErrorIs(t, err, distance.ErrOutOfRange)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { distance.WithWorkers(-1) })
	assert.Panics(t, func() { distance.WithMetric(nil) })
}

// TestSymmetric_IsCopy ensures the exported matrix does not alias the table.
func TestSymmetric_IsCopy(t *testing.T) {
	tbl, err := distance.Build(mustBoxes(t))
	require.NoError(t, err)

	s := tbl.Symmetric()
	require.Equal(t, 20, s.SymmetricDim())
	s.SetSym(0, 1, -5)
	d, _ := tbl.At(0, 1)
	assert.NotEqual(t, -5.0, d)
}
