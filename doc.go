// Package chromacore is an exact graph-coloring solver: given an
// undirected simple graph, it computes the chromatic number chi(G) and
// a witnessing proper coloring, using two independent branch-and-bound
// engines that share a DSATUR-branching skeleton.
//
// Under the hood, everything is organized under a handful of
// subpackages:
//
//	bitset/    — fixed-width word-packed bitsets with hardware popcount
//	graphview/ — immutable CSR+bitset graph, DIMACS .col parsing
//	heuristics/ — greedy clique lower bound, DSATUR upper bound
//	progress/  — non-blocking progress snapshots and solve deadlines
//	sewell/    — Sewell (1996) branch-and-bound engine
//	furini/    — Furini (2017) branch-and-bound engine with reduced-graph bound
//	solver/    — Solve/Race façade dispatching to either engine
//
// Typical use: parse a DIMACS fragment with graphview.ParseDIMACS and
// solve it with both engines concurrently via solver.Race.
package chromacore
