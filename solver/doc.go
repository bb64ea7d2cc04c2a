// Package solver provides the façade external callers use: a uniform
// Solve(variant, ...) call dispatching to sewell or furini, plus Race,
// which runs both concurrently against the same immutable graph and
// returns both results.
//
// # Results
//
// Result is a fixed-shape record: no optional fields, no dynamic dict --
// callers read Result.K, Result.Optimal, etc. directly. History is the
// ordered sequence of every progress.Snapshot the engine posted during
// the run, always including a terminal snapshot with Done == true.
//
// # Concurrency
//
// G is immutable once constructed (graphview.Graph), so the same *Graph
// can be solved concurrently by arbitrarily many Solve/Race calls; each
// call builds its own engine state and its own progress.Sink. Race uses
// golang.org/x/sync/errgroup to join the two goroutines it starts,
// rather than a hand-rolled sync.WaitGroup.
package solver
