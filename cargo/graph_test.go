package cargo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGraph(t *testing.T, tree string) *Graph {
	entries, err := ParseTree(tree)
	require.NoError(t, err)
	return NewGraph(entries)
}

func TestGraphTiers(t *testing.T) {
	g := mustGraph(t, "0root v0.1.0\n1midA v1.0.0\n2leafA v1.0.0\n1midB v1.0.0\n2leafA v1.0.0 (*)\n")
	assert.Equal(t, 4, g.Order())

	tiers, err := g.Tiers()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"leafA"}, {"midA", "midB"}, {"root"}}, tiers)
}

func TestGraphDependents(t *testing.T) {
	g := mustGraph(t, "0root v0.1.0\n1midA v1.0.0\n2leafA v1.0.0\n1midB v1.0.0\n")

	deps, err := g.Dependents("leafA", 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"midA": 1, "root": 2}, deps)

	deps, err = g.Dependents("leafA", 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"midA": 1}, deps)

	_, err = g.Dependents("nope", 0)
	assert.Error(t, err)
}

func TestGraphHashDeterministic(t *testing.T) {
	tree := "0root v0.1.0\n1midA v1.0.0\n2leafA v1.0.0\n"
	assert.Equal(t, mustGraph(t, tree).Hash(), mustGraph(t, tree).Hash())
	assert.NotEqual(t, mustGraph(t, tree).Hash(), mustGraph(t, "0root v0.1.0\n1midA v1.0.0\n1leafA v1.0.0\n").Hash())
}

func TestGraphCycle(t *testing.T) {
	// a dev-dependency cycle: a -> b -> a
	g := mustGraph(t, "0a v0.1.0\n1b v1.0.0\n2a v0.1.0\n")

	_, err := g.Tiers()
	var cyc QueryHasCyclesErr
	require.ErrorAs(t, err, &cyc)
	require.Len(t, cyc.Cycles, 1)
	assert.ElementsMatch(t, []string{"a", "b"}, cyc.Cycles[0])
}

func TestGraphWriteDOT(t *testing.T) {
	g := mustGraph(t, "0root v0.1.0\n1libA v1.0.0\n")

	var buf bytes.Buffer
	require.NoError(t, g.WriteDOT(&buf))
	out := buf.String()
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, `"libA" -> "root"`)
	assert.Contains(t, out, "libA 1.0.0")
}
