package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glstsp/matrix"
)

func TestNewSymmetric_RejectsNonPositiveSize(t *testing.T) {
	_, err := matrix.NewSymmetric(0)
	require.ErrorIs(t, err, matrix.ErrNonPositiveSize)

	_, err = matrix.NewSymmetric(-3)
	require.ErrorIs(t, err, matrix.ErrNonPositiveSize)
}

func TestSymmetric_ZeroValueIsZero(t *testing.T) {
	m, err := matrix.NewSymmetric(4)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, err := m.Get(i, j)
			require.NoError(t, err)
			require.EqualValues(t, 0, v)
		}
	}
}

func TestSymmetric_SetKeepsBothEntriesInSync(t *testing.T) {
	m, err := matrix.NewSymmetric(4)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 3, 7))

	v, err := m.Get(1, 3)
	require.NoError(t, err)
	require.EqualValues(t, 7, v)

	v, err = m.Get(3, 1)
	require.NoError(t, err)
	require.EqualValues(t, 7, v)
}

func TestSymmetric_GetOutOfRange(t *testing.T) {
	m, err := matrix.NewSymmetric(2)
	require.NoError(t, err)

	_, err = m.Get(2, 0)
	require.True(t, errors.Is(err, matrix.ErrIndexOutOfRange))

	_, err = m.Get(0, -1)
	require.True(t, errors.Is(err, matrix.ErrIndexOutOfRange))
}

func TestSymmetric_AddUncheckedAccumulates(t *testing.T) {
	m, err := matrix.NewSymmetric(3)
	require.NoError(t, err)

	m.AddUnchecked(0, 2, 1)
	m.AddUnchecked(0, 2, 1)

	require.EqualValues(t, 2, m.GetUnchecked(0, 2))
	require.EqualValues(t, 2, m.GetUnchecked(2, 0))
}

func TestSymmetric_Sum(t *testing.T) {
	// Four-city symmetric matrix, hand-computed edge sum.
	m, err := matrix.NewSymmetric(4)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(0, 2, 7))
	require.NoError(t, m.Set(0, 3, 3))
	require.NoError(t, m.Set(1, 2, 4))
	require.NoError(t, m.Set(1, 3, 1))
	require.NoError(t, m.Set(2, 3, 9))

	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	require.EqualValues(t, 18, m.Sum(edges))
}

func TestSymmetric_DebugStringDoesNotPanic(t *testing.T) {
	m, err := matrix.NewSymmetric(3)
	require.NoError(t, err)
	require.NotEmpty(t, m.DebugString(0))
	require.NotEmpty(t, m.DebugString(2))
}
