package solver_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/coloring-lab/chromacore/graphview"
	"github.com/coloring-lab/chromacore/solver"
)

// randomGraph builds an Erdos-Renyi G(n,p) graph deterministically from
// src, following the seeded-rand.Source pattern gonum's graph/coloring
// package uses for its own randomized routines.
func randomGraph(t *testing.T, n int, p float64, src rand.Source) *graphview.Graph {
	t.Helper()
	rng := rand.New(src)

	adj := make([][]int, n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				adj[u] = append(adj[u], v)
				adj[v] = append(adj[v], u)
			}
		}
	}

	rowStart := make([]int, n)
	deg := make([]int, n)
	var flat []int
	for v := 0; v < n; v++ {
		sort.Ints(adj[v])
		rowStart[v] = len(flat)
		deg[v] = len(adj[v])
		flat = append(flat, adj[v]...)
	}

	g, err := graphview.NewFromCSR(n, flat, rowStart, deg)
	require.NoError(t, err)

	return g
}

// TestPropertyRandomGraphsUniversalInvariants covers the universal
// properties required of both engines over small random graphs: proper
// coloring, LB <= K <= UBInit, deterministic re-solve, and agreement
// between Sewell and Furini whenever both finish without timing out.
func TestPropertyRandomGraphsUniversalInvariants(t *testing.T) {
	const n = 9
	seeds := []uint64{1, 2, 3, 4, 5, 6, 7, 8}
	densities := []float64{0.15, 0.35, 0.55, 0.75}

	for _, seed := range seeds {
		for _, p := range densities {
			g := randomGraph(t, n, p, rand.NewSource(seed))

			sewellRes, furiniRes, err := solver.Race(g, 5*time.Second, nil, nil)
			require.NoError(t, err)

			checkProper := func(res solver.Result) {
				require.LessOrEqual(t, res.LB, res.K)
				require.LessOrEqual(t, res.K, res.UBInit)
				for v := 0; v < g.N(); v++ {
					require.GreaterOrEqual(t, res.Coloring[v], 0)
					require.Less(t, res.Coloring[v], res.K)
					nb := g.NeighborsBits(v)
					for u, ok := nb.NextSet(0); ok; u, ok = nb.NextSet(u + 1) {
						if u > v {
							require.NotEqual(t, res.Coloring[v], res.Coloring[u])
						}
					}
				}
			}
			checkProper(sewellRes)
			checkProper(furiniRes)

			if sewellRes.Optimal && furiniRes.Optimal {
				require.Equal(t, sewellRes.K, furiniRes.K)
			}

			again, err := solver.Solve(solver.Sewell, g, 5*time.Second, nil)
			require.NoError(t, err)
			require.Equal(t, sewellRes.K, again.K)
			require.Equal(t, sewellRes.Coloring, again.Coloring)
		}
	}
}
