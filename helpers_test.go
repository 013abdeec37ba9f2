package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModEuclidean(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{7, 3, 1},
		{-7, 3, 2},
		{7, -3, 1},
		{-7, -3, 2},
		{0, 5, 0},
	}
	for _, tc := range cases {
		got, err := Mod(tc.a, tc.b)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "mod(%d,%d)", tc.a, tc.b)
		require.GreaterOrEqual(t, got, int64(0))
		if tc.b < 0 {
			require.Greater(t, got, tc.b)
		} else {
			require.Less(t, got, tc.b)
		}
		require.Zero(t, (tc.a-got)%tc.b)
	}
}

func TestModDivisionByZero(t *testing.T) {
	_, err := Mod(5, 0)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, ErrDivisionByZero, rerr.Code)
}

func TestToString(t *testing.T) {
	s, err := ToString(255, 16)
	require.NoError(t, err)
	require.Equal(t, "ff", s)

	s, err = ToString(-10, 2)
	require.NoError(t, err)
	require.Equal(t, "-1010", s)

	s, err = ToString(100, 10)
	require.NoError(t, err)
	require.Equal(t, "100", s)
}

func TestToStringInvalidBase(t *testing.T) {
	_, err := ToString(1, 1)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, ErrInvalidArgument, rerr.Code)

	_, err = ToString(1, 37)
	require.Error(t, err)
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, ErrInvalidArgument, rerr.Code)
}
