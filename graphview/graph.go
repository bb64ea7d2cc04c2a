package graphview

import (
	"fmt"

	"github.com/coloring-lab/chromacore/bitset"
)

// Graph is an immutable undirected simple graph: CSR adjacency kept in
// sync with a per-vertex bitset.Bitset mirror. Construct with NewFromCSR
// or ParseDIMACS; there is no mutation API afterward.
type Graph struct {
	n        int
	adjFlat  []int
	rowStart []int
	deg      []int
	adjBits  []*bitset.Bitset
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// Degree returns deg(v).
func (g *Graph) Degree(v int) int { return g.deg[v] }

// NeighborsBits returns the bitset of vertices adjacent to v. Callers
// must treat the returned Bitset as read-only; it is the Graph's own
// backing set, not a copy, since this is called on every B&B node.
func (g *Graph) NeighborsBits(v int) *bitset.Bitset { return g.adjBits[v] }

// Neighbors returns the CSR neighbor slice of v in ascending order.
// Convenience accessor for callers outside the hot path.
func (g *Graph) Neighbors(v int) []int {
	start := g.rowStart[v]

	return g.adjFlat[start : start+g.deg[v]]
}

// Density returns the edge density as a percentage of the n*(n-1)/2
// possible undirected edges, rounded to 2 decimal places. Mirrors the
// density figure DIMACS parsers conventionally report alongside n/m.
func (g *Graph) Density() float64 {
	if g.n < 2 {
		return 0.0
	}
	m := 0
	for _, d := range g.deg {
		m += d
	}
	m /= 2
	possible := float64(g.n) * float64(g.n-1) / 2
	d := float64(m) / possible * 100

	return roundTo2(d)
}

func roundTo2(x float64) float64 {
	return float64(int(x*100+0.5)) / 100
}

// NewFromCSR validates and constructs a Graph from a raw CSR triple:
//
//	0 <= adj_flat[i] < n for every entry;
//	row_start is non-decreasing (strict monotonicity is not required,
//	since a vertex of degree 0 repeats the previous offset);
//	every (u,v) in the flat list has a mirrored (v,u);
//	no self-loops.
//
// deg must equal the per-vertex run lengths implied by rowStart; the
// caller (a DIMACS parser or any other upstream producer) is expected
// to have derived rowStart/deg consistently, but NewFromCSR re-derives
// adjacency purely from rowStart+deg+adjFlat and independently checks
// popcount(adj[v]) == deg[v] as an internal invariant.
func NewFromCSR(n int, adjFlat, rowStart, deg []int) (*Graph, error) {
	if n == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrNoVertices)
	}
	if n < 0 || len(rowStart) != n || len(deg) != n {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrOutOfRange)
	}

	for i := 1; i < n; i++ {
		if rowStart[i] < rowStart[i-1] {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrRowStartOrder)
		}
	}

	for v := 0; v < n; v++ {
		if deg[v] < 0 || rowStart[v]+deg[v] > len(adjFlat) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrOutOfRange)
		}
	}

	g := &Graph{
		n:        n,
		adjFlat:  append([]int(nil), adjFlat...),
		rowStart: append([]int(nil), rowStart...),
		deg:      append([]int(nil), deg...),
		adjBits:  make([]*bitset.Bitset, n),
	}
	for v := 0; v < n; v++ {
		g.adjBits[v] = bitset.New(n)
	}

	for v := 0; v < n; v++ {
		start := g.rowStart[v]
		for k := 0; k < g.deg[v]; k++ {
			u := g.adjFlat[start+k]
			if u < 0 || u >= n {
				return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrOutOfRange)
			}
			if u == v {
				return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrSelfLoop)
			}
			g.adjBits[v].Set(u)
		}
	}

	for v := 0; v < n; v++ {
		if g.adjBits[v].PopCount() != g.deg[v] {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrOutOfRange)
		}
		it := g.adjBits[v]
		for u, ok := it.NextSet(0); ok; u, ok = it.NextSet(u + 1) {
			if !g.adjBits[u].Test(v) {
				return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrAsymmetricEdge)
			}
		}
	}

	return g, nil
}
