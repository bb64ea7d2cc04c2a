package furini

import (
	"github.com/coloring-lab/chromacore/bitset"
	"github.com/coloring-lab/chromacore/internal/bbengine"
)

// reducedAdjacent reports whether u and v are connected in the reduced
// graph R: adjacent in G, and their remaining available color sets
// still overlap (they could still end up sharing a color).
func reducedAdjacent(e *bbengine.Engine, u, v int) bool {
	if !e.Graph().NeighborsBits(u).Test(v) {
		return false
	}

	return !bitset.Intersect(e.Available(u), e.Available(v)).IsZero()
}

// reducedCliqueLB computes a greedy clique in R restricted to the
// currently uncolored vertices, exactly as heuristics.GreedyCliqueLB
// does over G (max R-degree within the candidate set, ties by lowest
// id), but against the dynamic reduced adjacency rather than G's fixed
// adjacency.
func reducedCliqueLB(e *bbengine.Engine) int {
	n := e.N()
	candidates := bitset.New(n)
	for v := 0; v < n; v++ {
		if !e.Colored(v) {
			candidates.Set(v)
		}
	}

	size := 0
	for !candidates.IsZero() {
		best := -1
		bestDeg := -1
		for v, ok := candidates.NextSet(0); ok; v, ok = candidates.NextSet(v + 1) {
			deg := countReducedNeighborsIn(e, v, candidates)
			if deg > bestDeg {
				bestDeg = deg
				best = v
			}
		}
		size++
		candidates.Clear(best)

		for v, ok := candidates.NextSet(0); ok; v, ok = candidates.NextSet(v + 1) {
			if !reducedAdjacent(e, best, v) {
				candidates.Clear(v)
			}
		}
	}

	return size
}

// countReducedNeighborsIn counts how many vertices in candidates are
// R-adjacent to v.
func countReducedNeighborsIn(e *bbengine.Engine, v int, candidates *bitset.Bitset) int {
	count := 0
	for u, ok := candidates.NextSet(0); ok; u, ok = candidates.NextSet(u + 1) {
		if u != v && reducedAdjacent(e, v, u) {
			count++
		}
	}

	return count
}
