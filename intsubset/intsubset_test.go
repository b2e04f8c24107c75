// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package intsubset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddContain(t *testing.T) {
	s := New(5, 1, 3, 1)
	require.Equal(t, []int{1, 3, 5}, s.Values())
	require.True(t, s.Contain(3))
	require.False(t, s.Contain(4))
}

func TestRemove(t *testing.T) {
	s := New(1, 2, 3)
	s.Remove(2)
	require.Equal(t, []int{1, 3}, s.Values())
}

func TestRangeCount(t *testing.T) {
	s := Range(2, 6)
	require.Equal(t, 5, s.RangeCount(0, 100))
	require.Equal(t, 2, s.RangeCount(5, 6))
	require.Equal(t, 0, s.RangeCount(10, 20))
}

func TestLowerUpper(t *testing.T) {
	s := New(7, 2, 9)
	require.Equal(t, 2, s.Lower())
	require.Equal(t, 9, s.Upper())
}

func TestEmpty(t *testing.T) {
	var s Set
	require.True(t, s.Empty())
	s.Add(0)
	require.False(t, s.Empty())
}
