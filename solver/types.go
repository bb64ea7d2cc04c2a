package solver

import (
	"errors"

	"github.com/coloring-lab/chromacore/progress"
)

// Variant selects which exact engine Solve dispatches to.
type Variant int

const (
	// Sewell selects the Sewell (1996) engine.
	Sewell Variant = iota

	// Furini selects the Furini (2017) engine.
	Furini
)

// String returns the display label used in Result.Algo.
func (v Variant) String() string {
	switch v {
	case Sewell:
		return "Sewell (1996)"
	case Furini:
		return "Furini (2017)"
	default:
		return "unknown"
	}
}

// ErrUnsupportedVariant is returned by Solve for any Variant value other
// than Sewell or Furini.
var ErrUnsupportedVariant = errors.New("solver: unsupported variant")

// Result is the fixed-shape output of a solve call.
type Result struct {
	// Algo identifies which engine produced this result.
	Algo string

	// K is the final incumbent coloring size: chi-hat(G).
	K int

	// Coloring maps each vertex to its 0-indexed color.
	Coloring []int

	// LB is the final proven lower bound.
	LB int

	// UBInit is the DSATUR seed upper bound computed before any search.
	UBInit int

	// Optimal is true iff LB == K and the search did not time out.
	Optimal bool

	// Nodes is the number of branch-and-bound nodes visited.
	Nodes int64

	// Cuts is the number of subtrees pruned.
	Cuts int64

	// Elapsed is the wall-clock solve time in seconds.
	Elapsed float64

	// Timeout is true if the deadline was exceeded before completion.
	// Coloring is still a valid proper coloring in that case.
	Timeout bool

	// History is every progress.Snapshot posted during the run, in
	// order, including the terminal (Done == true) snapshot.
	History []progress.Snapshot
}
