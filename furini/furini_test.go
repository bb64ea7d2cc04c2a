package furini_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coloring-lab/chromacore/furini"
	"github.com/coloring-lab/chromacore/graphview"
)

func mustParse(t *testing.T, doc string) *graphview.Graph {
	t.Helper()
	g, err := graphview.ParseDIMACS(strings.NewReader(doc))
	require.NoError(t, err)

	return g
}

func assertProperColoring(t *testing.T, g *graphview.Graph, coloring []int, k int) {
	t.Helper()
	for v := 0; v < g.N(); v++ {
		require.GreaterOrEqual(t, coloring[v], 0)
		require.Less(t, coloring[v], k)
		nb := g.NeighborsBits(v)
		for u, ok := nb.NextSet(0); ok; u, ok = nb.NextSet(u + 1) {
			if u > v {
				require.NotEqual(t, coloring[v], coloring[u])
			}
		}
	}
}

func TestFuriniTriangle(t *testing.T) {
	g := mustParse(t, "p edge 3 3\ne 1 2\ne 2 3\ne 1 3\n")
	out := furini.Solve(g, 0, nil)
	require.Equal(t, 3, out.K)
	require.True(t, out.Optimal)
	assertProperColoring(t, g, out.Coloring, out.K)
}

func TestFuriniOddCycle(t *testing.T) {
	g := mustParse(t, "p edge 5 5\ne 1 2\ne 2 3\ne 3 4\ne 4 5\ne 5 1\n")
	out := furini.Solve(g, 0, nil)
	require.Equal(t, 3, out.K)
	require.True(t, out.Optimal)
	assertProperColoring(t, g, out.Coloring, out.K)
}

func TestFuriniPetersenGraph(t *testing.T) {
	const doc = `p edge 10 15
e 1 2
e 2 3
e 3 4
e 4 5
e 5 1
e 6 8
e 8 10
e 10 7
e 7 9
e 9 6
e 1 6
e 2 7
e 3 8
e 4 9
e 5 10
`
	g := mustParse(t, doc)
	out := furini.Solve(g, 0, nil)
	require.Equal(t, 3, out.K)
	require.True(t, out.Optimal)
	assertProperColoring(t, g, out.Coloring, out.K)
}

func TestFuriniDeterministic(t *testing.T) {
	g := mustParse(t, "p edge 5 5\ne 1 2\ne 2 3\ne 3 4\ne 4 5\ne 5 1\n")
	a := furini.Solve(g, 0, nil)
	b := furini.Solve(g, 0, nil)
	require.Equal(t, a.K, b.K)
	require.Equal(t, a.Coloring, b.Coloring)
	require.Equal(t, a.Nodes, b.Nodes)
	require.Equal(t, a.Cuts, b.Cuts)
}

func TestFuriniAgreesWithSewellOnOptimum(t *testing.T) {
	// Myciel3 (11 vertices, 20 edges), chi = 4.
	const doc = `p edge 11 20
e 1 2
e 1 4
e 1 7
e 1 9
e 2 3
e 2 6
e 2 8
e 3 5
e 3 7
e 3 10
e 4 5
e 4 6
e 4 10
e 5 8
e 5 9
e 6 11
e 7 11
e 8 11
e 9 11
e 10 11
`
	g := mustParse(t, doc)
	out := furini.Solve(g, 0, nil)
	require.Equal(t, 4, out.K)
	require.True(t, out.Optimal)
	assertProperColoring(t, g, out.Coloring, out.K)
}
