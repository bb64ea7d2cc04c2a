package heuristics

import "github.com/coloring-lab/chromacore/graphview"

const unassigned = -1

// DsaturUB computes a DSATUR upper bound coloring.
//
// Assigns colors one vertex at a time. Choice rule: pick the uncolored
// vertex with maximum saturation (distinct colors among colored
// neighbors); break ties by maximum uncolored-subgraph degree; break
// further ties by lowest id. Assign the smallest color index not
// appearing among N(v)'s already-assigned colors, opening a new color
// only if necessary.
//
// Returns (k, coloring) where k = 1 + max(coloring).
//
// Complexity: O(n^2) (n rounds, each scanning candidate saturation and
// color assignment over an n-bit neighborhood).
func DsaturUB(g *graphview.Graph) (int, []int) {
	n := g.N()
	coloring := make([]int, n)
	for v := range coloring {
		coloring[v] = unassigned
	}
	colored := make([]bool, n)
	satDegree := make([]int, n) // count of distinct neighbor colors
	usedColorOfNeighbor := make([]map[int]bool, n)
	for v := 0; v < n; v++ {
		usedColorOfNeighbor[v] = make(map[int]bool)
	}
	uncoloredDeg := make([]int, n)
	for v := 0; v < n; v++ {
		uncoloredDeg[v] = g.Degree(v)
	}

	maxColor := -1
	for assigned := 0; assigned < n; assigned++ {
		v := pickDsaturVertex(n, colored, satDegree, uncoloredDeg)
		c := smallestAvailableColor(g, v, coloring)
		coloring[v] = c
		if c > maxColor {
			maxColor = c
		}
		colored[v] = true

		nb := g.NeighborsBits(v)
		for u, ok := nb.NextSet(0); ok; u, ok = nb.NextSet(u + 1) {
			if colored[u] {
				continue
			}
			uncoloredDeg[u]--
			if !usedColorOfNeighbor[u][c] {
				usedColorOfNeighbor[u][c] = true
				satDegree[u]++
			}
		}
	}

	return maxColor + 1, coloring
}

// pickDsaturVertex selects the next branching/assignment vertex by the
// DSATUR rule: max saturation, then max uncolored degree, then lowest id.
func pickDsaturVertex(n int, colored []bool, satDegree, uncoloredDeg []int) int {
	best := -1
	for v := 0; v < n; v++ {
		if colored[v] {
			continue
		}
		if best == -1 || better(v, best, satDegree, uncoloredDeg) {
			best = v
		}
	}

	return best
}

func better(v, best int, satDegree, uncoloredDeg []int) bool {
	if satDegree[v] != satDegree[best] {
		return satDegree[v] > satDegree[best]
	}
	if uncoloredDeg[v] != uncoloredDeg[best] {
		return uncoloredDeg[v] > uncoloredDeg[best]
	}

	return v < best
}

// smallestAvailableColor returns the smallest color index not used by
// any already-colored neighbor of v.
func smallestAvailableColor(g *graphview.Graph, v int, coloring []int) int {
	nb := g.NeighborsBits(v)
	used := make(map[int]bool)
	for u, ok := nb.NextSet(0); ok; u, ok = nb.NextSet(u + 1) {
		if coloring[u] != unassigned {
			used[coloring[u]] = true
		}
	}
	for c := 0; ; c++ {
		if !used[c] {
			return c
		}
	}
}
