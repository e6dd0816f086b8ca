package cluster_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jbox/candidate"
	"github.com/katalvlaran/jbox/distance"
	"github.com/katalvlaran/jbox/internal/fixture"
	"github.com/katalvlaran/jbox/pointset"
)

// boxes parses the 20-point worked example.
func boxes(t testing.TB) *pointset.PointSet {
	t.Helper()
	ps, err := pointset.Parse(strings.NewReader(fixture.JunctionBoxes))
	require.NoError(t, err)

	return ps
}

// orderOf computes the candidate order of ps.
func orderOf(t testing.TB, ps *pointset.PointSet) candidate.Order {
	t.Helper()
	tbl, err := distance.Build(ps)
	require.NoError(t, err)
	order, err := candidate.Build(tbl)
	require.NoError(t, err)

	return order
}
