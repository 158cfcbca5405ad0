package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glstsp/matrix"
	"github.com/katalvlaran/glstsp/tsp"
)

func tinyDistance(t *testing.T) *matrix.Symmetric {
	t.Helper()
	m, err := matrix.NewSymmetric(4)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(0, 2, 7))
	require.NoError(t, m.Set(0, 3, 3))
	require.NoError(t, m.Set(1, 2, 4))
	require.NoError(t, m.Set(1, 3, 1))
	require.NoError(t, m.Set(2, 3, 9))
	return m
}

func TestRoute_CostMatchesFourCityExample(t *testing.T) {
	dist := tinyDistance(t)
	r := tsp.NewRoute([]int{0, 1, 2, 3}, dist)
	require.EqualValues(t, 18, r.Cost())
}

func TestRoute_CostInvariantUnderRotation(t *testing.T) {
	dist := tinyDistance(t)
	a := tsp.NewRoute([]int{0, 1, 2, 3}, dist)
	b := tsp.NewRoute([]int{2, 3, 0, 1}, dist)
	require.Equal(t, a.Cost(), b.Cost())
}

func TestRoute_TwistAppliesDeltaExactly(t *testing.T) {
	dist := tinyDistance(t)
	r := tsp.NewRoute([]int{0, 1, 2, 3}, dist)
	before := r.Cost()

	// twist(1,2) turns [0,1,2,3] into [0,2,1,3]: cost 18 -> 15, delta -3.
	r.Twist(1, 2, -3)
	require.EqualValues(t, before-3, r.Cost())

	recomputed := tsp.NewRoute(r.Path(), dist)
	require.Equal(t, recomputed.Cost(), r.Cost())
}
