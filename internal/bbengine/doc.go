// Package bbengine holds the branch-and-bound skeleton shared by sewell
// and furini: incremental state maintenance (available colors,
// saturation degree, uncolored-subgraph degree, color classes), the
// recursive search driver, and incumbent/progress bookkeeping. The two
// public engines differ only in branching-vertex selection and whether
// an extra per-node lower bound is computed before branching — both
// expressed as a Policy the caller supplies.
//
// This mirrors tsp/bb.go's bbEngine: a dedicated struct (not anonymous
// closures) keeps dependencies explicit and hot-path state predictable,
// with exactly the assign-then-recurse-then-revert discipline tsp/bb.go
// uses for its own DFS.
package bbengine
