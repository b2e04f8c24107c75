// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frontierzdd/frontier/zdd"
)

func TestParseRange(t *testing.T) {
	s, err := parseRange("")
	require.NoError(t, err)
	require.True(t, s.Empty())

	s, err = parseRange("3")
	require.NoError(t, err)
	require.True(t, s.Contain(3))
	require.False(t, s.Contain(4))

	s, err = parseRange("2:5")
	require.NoError(t, err)
	require.True(t, s.Contain(2))
	require.True(t, s.Contain(5))
	require.False(t, s.Contain(6))

	_, err = parseRange("not-a-number")
	require.Error(t, err)
}

func TestParseVertices(t *testing.T) {
	s, err := parseVertices("0, 1,2")
	require.NoError(t, err)
	require.True(t, s.Contain(0))
	require.True(t, s.Contain(1))
	require.True(t, s.Contain(2))
	require.Equal(t, 3, s.Size())
}

func writeGraphFile(t *testing.T, text string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestBuildAndReducePowerSpec(t *testing.T) {
	path := writeGraphFile(t, "3 2\n0 1\n1 2\n")
	dd, stats, err := buildAndReduce(path, specFlags{kind: "power", ordering: "as-is"})
	require.NoError(t, err)
	require.Equal(t, 3, stats.NumV)
	require.Equal(t, 2, stats.NumE)
	require.Equal(t, "4", zdd.Cardinality(dd).String())
}

func TestBuildAndReduceCoverSpec(t *testing.T) {
	path := writeGraphFile(t, "3 2\n0 1\n1 2\n")
	dd, _, err := buildAndReduce(path, specFlags{kind: "cover", ordering: "as-is"})
	require.NoError(t, err)
	require.Greater(t, dd.NodeCount(), 0)
}
