package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByDepthIsStable(t *testing.T) {
	l := DependencyList{
		{Depth: 0, Name: "root"},
		{Depth: 1, Name: "midA"},
		{Depth: 2, Name: "leafA"},
		{Depth: 1, Name: "midB"},
		{Depth: 2, Name: "leafB"},
	}
	l.SortByDepth()

	assert.Equal(t, []string{"leafA", "leafB", "midA", "midB", "root"}, l.Names())
	assert.Equal(t, 4, l.Root())
}

func TestRootMissing(t *testing.T) {
	l := DependencyList{{Depth: 1, Name: "a"}}
	assert.Equal(t, -1, l.Root())
}

func TestDependencyShow(t *testing.T) {
	dep := Dependency{Depth: 2, Name: "libc", Version: "0.2.150"}
	assert.Equal(t, "libc@0.2.150(2)", dep.Show(false))
	assert.Contains(t, dep.Show(true), "libc")
	assert.Equal(t, "rust-libc", dep.Package())
	assert.False(t, dep.IsRoot())
}
