package heuristics_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coloring-lab/chromacore/graphview"
	"github.com/coloring-lab/chromacore/heuristics"
)

func mustParse(t *testing.T, doc string) *graphview.Graph {
	t.Helper()
	g, err := graphview.ParseDIMACS(strings.NewReader(doc))
	require.NoError(t, err)

	return g
}

func TestGreedyCliqueLBTriangle(t *testing.T) {
	g := mustParse(t, "p edge 3 3\ne 1 2\ne 2 3\ne 1 3\n")
	assert.Equal(t, 3, heuristics.GreedyCliqueLB(g))
}

func TestGreedyCliqueLBBipartite(t *testing.T) {
	g := mustParse(t, "p edge 4 4\ne 1 2\ne 2 3\ne 3 4\ne 4 1\n")
	assert.Equal(t, 2, heuristics.GreedyCliqueLB(g))
}

func TestGreedyCliqueLBEmptyGraph(t *testing.T) {
	g, err := graphview.NewFromCSR(3, nil, []int{0, 0, 0}, []int{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, heuristics.GreedyCliqueLB(g))
}

func TestDsaturUBTriangle(t *testing.T) {
	g := mustParse(t, "p edge 3 3\ne 1 2\ne 2 3\ne 1 3\n")
	k, coloring := heuristics.DsaturUB(g)
	assert.Equal(t, 3, k)
	assertProper(t, g, coloring, k)
}

func TestDsaturUBOddCycle(t *testing.T) {
	g := mustParse(t, "p edge 5 5\ne 1 2\ne 2 3\ne 3 4\ne 4 5\ne 5 1\n")
	k, coloring := heuristics.DsaturUB(g)
	assert.LessOrEqual(t, k, 3)
	assertProper(t, g, coloring, k)
}

func TestDsaturUBBipartiteUsesTwoColors(t *testing.T) {
	g := mustParse(t, "p edge 4 4\ne 1 2\ne 2 3\ne 3 4\ne 4 1\n")
	k, coloring := heuristics.DsaturUB(g)
	assert.Equal(t, 2, k)
	assertProper(t, g, coloring, k)
}

func assertProper(t *testing.T, g *graphview.Graph, coloring []int, k int) {
	t.Helper()
	for v := 0; v < g.N(); v++ {
		assert.GreaterOrEqual(t, coloring[v], 0)
		assert.Less(t, coloring[v], k)
		nb := g.NeighborsBits(v)
		for u, ok := nb.NextSet(0); ok; u, ok = nb.NextSet(u + 1) {
			if u > v {
				assert.NotEqual(t, coloring[v], coloring[u], "edge (%d,%d) same color", v, u)
			}
		}
	}
}
