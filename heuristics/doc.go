// Package heuristics implements the two fast, non-exact procedures the
// branch-and-bound engines seed their search bounds from: a greedy
// clique lower bound and a DSATUR upper bound.
//
// # What & Why
//
// Both sewell and furini start from these: GreedyCliqueLB gives the
// initial LB, DsaturUB gives the initial UB (and its incumbent
// coloring). A good UB dramatically strengthens pruning from the very
// first node — the same rationale tsp/bb.go documents for seeding its
// Branch-and-Bound with a Christofides tour before DFS begins.
//
// # Determinism
//
// Every tie-break in both procedures resolves to the lowest vertex id:
// identical inputs always produce identical output, which both callers
// rely on for reproducible search trees.
package heuristics
