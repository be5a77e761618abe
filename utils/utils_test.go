package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourbasic/graph"
)

func TestTieredTopSort(t *testing.T) {
	g := graph.New(4)
	g.Add(0, 1)
	g.Add(0, 2)
	g.Add(1, 3)
	g.Add(2, 3)

	tiers, ok := TieredTopSort(g)
	require.True(t, ok)
	assert.Equal(t, [][]int{{0}, {1, 2}, {3}}, tiers)
}

func TestTieredTopSortCycle(t *testing.T) {
	g := graph.New(2)
	g.Add(0, 1)
	g.Add(1, 0)

	_, ok := TieredTopSort(g)
	assert.False(t, ok)
}

func TestBFSWithDepth(t *testing.T) {
	g := graph.New(4)
	g.Add(0, 1)
	g.Add(1, 2)
	g.Add(2, 3)

	depths := map[int]int{}
	BFSWithDepth(g, 0, func(v int, depth int) bool {
		if depth > 2 {
			return true
		}
		depths[v] = depth
		return false
	})
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2}, depths)
}

func TestGraphHashStable(t *testing.T) {
	a := graph.New(2)
	a.Add(0, 1)
	b := graph.New(2)
	b.Add(0, 1)
	c := graph.New(2)
	c.Add(1, 0)

	assert.Equal(t, GraphHash(graph.Sort(a)), GraphHash(graph.Sort(b)))
	assert.NotEqual(t, GraphHash(graph.Sort(a)), GraphHash(graph.Sort(c)))
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")

	require.NoError(t, EnsureDir(sub))
	require.NoError(t, EnsureDir(sub))
	assert.True(t, PathExists(sub))

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	assert.Error(t, EnsureDir(file))
}

func TestSliceHelpers(t *testing.T) {
	in := []int{1, 2, 3, 4}
	assert.Equal(t, []int{2, 4}, Filter(in, func(i int) bool { return i%2 == 0 }))
	assert.Equal(t, []int{1, 2, 3, 4}, in)
	assert.Empty(t, Filter(in, func(int) bool { return false }))
	assert.Equal(t, []int{1, 2, 3}, Flatten([][]int{{1}, {2, 3}}))
	assert.Equal(t, []string{"a!", "b!"}, Map([]string{"a", "b"}, func(s string) string { return s + "!" }))
}
