package sewell

import (
	"time"

	"github.com/coloring-lab/chromacore/bitset"
	"github.com/coloring-lab/chromacore/internal/bbengine"
	"github.com/coloring-lab/chromacore/progress"

	"github.com/coloring-lab/chromacore/graphview"
)

// policy implements bbengine.Policy with the Sewell branching rule and
// no additional per-node pruning.
type policy struct{}

// Prune never cuts a subtree beyond the standard feasibility check the
// engine already applies when enumerating candidate colors.
func (policy) Prune(*bbengine.Engine) bool { return false }

// BranchVertex implements the three-stage Sewell tie-break: maximum
// saturation degree, then maximum uncolored-subgraph degree, then
// maximum shared-options score.
func (policy) BranchVertex(e *bbengine.Engine) int {
	n := e.N()

	bestSat := -1
	for v := 0; v < n; v++ {
		if e.Colored(v) {
			continue
		}
		if e.SatDegree(v) > bestSat {
			bestSat = e.SatDegree(v)
		}
	}

	bestDeg := -1
	for v := 0; v < n; v++ {
		if e.Colored(v) || e.SatDegree(v) != bestSat {
			continue
		}
		if e.UncoloredDeg(v) > bestDeg {
			bestDeg = e.UncoloredDeg(v)
		}
	}

	best := -1
	bestScore := -1
	for v := 0; v < n; v++ {
		if e.Colored(v) || e.SatDegree(v) != bestSat || e.UncoloredDeg(v) != bestDeg {
			continue
		}
		score := sharedOptionsScore(e, v)
		if score > bestScore {
			bestScore = score
			best = v
		}
	}

	return best
}

// sharedOptionsScore sums, over every uncolored neighbor u of v, the
// number of colors both v and u still have available — the vertex
// maximizing this is the one whose eventual color choice most
// constrains its neighborhood, so branching on it first tends to
// tighten the search fastest.
func sharedOptionsScore(e *bbengine.Engine, v int) int {
	av := e.Available(v)
	score := 0
	nb := e.Graph().NeighborsBits(v)
	for u, ok := nb.NextSet(0); ok; u, ok = nb.NextSet(u + 1) {
		if e.Colored(u) {
			continue
		}
		score += bitset.Intersect(av, e.Available(u)).PopCount()
	}

	return score
}

// Solve runs the Sewell (1996) engine to completion or until timeLimit
// elapses (<=0 means no limit). sink may be nil if the caller has no
// interest in progress snapshots.
func Solve(g *graphview.Graph, timeLimit time.Duration, sink *progress.Sink) bbengine.Outcome {
	if sink == nil {
		sink = progress.NewSink()
	}
	e := bbengine.New(g, progress.NewDeadline(timeLimit), sink)

	return e.Run(policy{})
}
