package heuristics

import "github.com/coloring-lab/chromacore/graphview"

// GreedyCliqueLB computes a greedy clique lower bound on chi(G).
//
// Repeatedly picks the vertex of maximum degree within the current
// candidate set C (initialized to all vertices), adds it to the clique,
// intersects C with its neighbors, and repeats until C is empty. Ties
// are broken by lowest vertex id. Returns the clique size, which is a
// valid lower bound on chi(G) since every clique of size k forces k
// distinct colors.
//
// Complexity: O(n^2) worst case (n iterations, each scanning C).
func GreedyCliqueLB(g *graphview.Graph) int {
	n := g.N()
	candidates := make([]bool, n)
	for v := 0; v < n; v++ {
		candidates[v] = true
	}
	remaining := n
	size := 0

	for remaining > 0 {
		best := -1
		bestDeg := -1
		for v := 0; v < n; v++ {
			if !candidates[v] {
				continue
			}
			d := countCandidateNeighbors(g, v, candidates)
			if d > bestDeg {
				bestDeg = d
				best = v
			}
		}
		if best == -1 {
			break
		}
		size++
		candidates[best] = false
		remaining--

		// Intersect C with N(best): drop every remaining candidate that
		// is not adjacent to best.
		nb := g.NeighborsBits(best)
		for v := 0; v < n; v++ {
			if candidates[v] && v != best && !nb.Test(v) {
				candidates[v] = false
				remaining--
			}
		}
	}

	return size
}

// countCandidateNeighbors counts how many vertices in candidates are
// adjacent to v; used to pick the maximum-degree vertex within C.
func countCandidateNeighbors(g *graphview.Graph, v int, candidates []bool) int {
	nb := g.NeighborsBits(v)
	count := 0
	for u, ok := nb.NextSet(0); ok; u, ok = nb.NextSet(u + 1) {
		if candidates[u] {
			count++
		}
	}

	return count
}
