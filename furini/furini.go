package furini

import (
	"time"

	"github.com/coloring-lab/chromacore/graphview"
	"github.com/coloring-lab/chromacore/internal/bbengine"
	"github.com/coloring-lab/chromacore/progress"
)

// policy implements bbengine.Policy: plain DSATUR branching plus the
// reduced-graph clique bound as a pre-branch prune.
type policy struct{}

// Prune computes lb_node = used + omega_R and cuts the subtree when it
// meets or exceeds the incumbent.
func (policy) Prune(e *bbengine.Engine) bool {
	used := e.ColorsUsed()
	omega := reducedCliqueLB(e)

	return used+omega >= e.UB()
}

// BranchVertex implements plain DSATUR: max saturation, then max
// uncolored degree, then lowest id -- no shared-options tie-break.
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

	best := -1
	bestDeg := -1
	for v := 0; v < n; v++ {
		if e.Colored(v) || e.SatDegree(v) != bestSat {
			continue
		}
		if e.UncoloredDeg(v) > bestDeg {
			bestDeg = e.UncoloredDeg(v)
			best = v
		}
	}

	return best
}

// Solve runs the Furini (2017) engine to completion or until timeLimit
// elapses (<=0 means no limit). sink may be nil if the caller has no
// interest in progress snapshots.
func Solve(g *graphview.Graph, timeLimit time.Duration, sink *progress.Sink) bbengine.Outcome {
	if sink == nil {
		sink = progress.NewSink()
	}
	e := bbengine.New(g, progress.NewDeadline(timeLimit), sink)

	return e.Run(policy{})
}
