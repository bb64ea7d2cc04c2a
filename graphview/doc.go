// Package graphview provides a read-only graph view used by the coloring
// engines: a CSR adjacency representation kept in sync with a
// per-vertex bitset.Bitset, plus a permissive DIMACS .col parser.
//
// # What & Why
//
// sewell and furini need two things from a graph, cheaply:
//
//   - degree/neighbor iteration for the DSATUR heuristic and branching,
//   - fast per-vertex "is u adjacent to v" and set intersections for the
//     Sewell shared-available-colors tie-break and the Furini
//     reduced-graph clique bound.
//
// CSR gives compact, cache-friendly neighbor iteration; the bitset
// mirror gives O(⌈n/64⌉) adjacency tests and intersections. Graph
// builds both once and exposes only read accessors afterward — no
// mutation is possible post-construction, so a *Graph is safe to share
// across concurrently running solver.Solve calls.
//
// # Input Requirements
//
//	n must be >= 1 (n == 0 is rejected, see ErrNoVertices).
//	adj_flat entries must be in [0, n).
//	row_start must be non-decreasing (a repeated offset marks an
//	isolated vertex — an isolated-vertex graph must still build, so
//	strictly increasing offsets would reject legitimate input).
//	The adjacency must be symmetric: (u, v) in the flat list implies (v, u) does too.
//	No self-loops.
//
// # Errors
//
//	ErrNoVertices, ErrOutOfRange, ErrRowStartOrder, ErrAsymmetricEdge, ErrSelfLoop
//
// all wrapped under ErrInvalidInput (errors.Is both match).
package graphview
