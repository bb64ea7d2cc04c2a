// Package sewell implements the Sewell (1996) exact branch-and-bound
// coloring engine: DSATUR branching with a shared-available-colors
// tie-break, and the standard feasibility cut (no candidate color can
// open a class whose index is >= the current incumbent).
//
// # Algorithm
//
// Branching vertex: among uncolored vertices, maximum saturation degree;
// tie-break by maximum uncolored-subgraph degree; tie-break by the
// vertex maximizing the number of shared available colors with its
// uncolored neighbors (summed over all uncolored neighbors); final
// tie-break by lowest vertex id.
//
// The recursive search, incremental state maintenance, and
// assign/revert discipline live in the shared internal/bbengine
// package (grounded on tsp/bb.go's bbEngine); this package supplies
// only the Policy the engine needs.
package sewell
