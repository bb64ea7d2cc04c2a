// Package progress provides the two small cross-cutting primitives every
// solve call needs: a monotonic wall-clock Deadline, and a non-blocking
// progress Sink that engines post snapshots to.
//
// # Contract
//
// Sink is a single-slot, atomic-swap latch: Post never blocks the
// producer and is lossy for intermediate snapshots (a later Post
// overwrites an undrained earlier one), but the final snapshot (Done:
// true) is always delivered — callers drain after Post(..., Done: true)
// completes, by which point the slot holds exactly that snapshot.
// Concurrent engines each own their own Sink; nothing here is shared
// across engines, so solver.Race can run two solves side by side without
// either Sink racing the other.
//
// SnapshotEvery is the node-count cadence engines post intermediate
// progress at (every 500 nodes, plus on every UB improvement),
// matching the cadence the original ctypes-callback implementation used.
package progress
