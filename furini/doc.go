// Package furini implements the Furini (2017) exact branch-and-bound
// coloring engine: plain DSATUR branching plus a per-node reduced-graph
// clique lower bound computed before every branch.
//
// # Algorithm
//
// Branching vertex: plain DSATUR (max saturation, then max
// uncolored-subgraph degree, then lowest id) -- no Sewell shared-options
// tie-break.
//
// Before branching at each interior node, builds R, the subgraph induced
// by the uncolored vertices restricted to pairs that are both adjacent
// in G and whose available color sets still intersect, and computes a
// greedy clique in R (sized omega_R). The node's local bound is
// used + omega_R, where used is the number of colors already committed
// in the partial assignment. The subtree is pruned when this bound meets
// or exceeds the incumbent; it is a local bound only, never promoted to
// the engine's global lower bound.
package furini
