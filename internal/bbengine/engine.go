package bbengine

import (
	"time"

	"github.com/coloring-lab/chromacore/bitset"
	"github.com/coloring-lab/chromacore/graphview"
	"github.com/coloring-lab/chromacore/heuristics"
	"github.com/coloring-lab/chromacore/progress"
)

const unassigned = -1

// Policy supplies the two decisions that differ between Sewell and
// Furini: which uncolored vertex to branch on, and whether to prune the
// current node before branching at all (Furini's reduced-graph bound;
// Sewell's Policy.Prune is always a no-op).
type Policy interface {
	// BranchVertex selects the next vertex to color, given the engine's
	// current incremental state.
	BranchVertex(e *Engine) int

	// Prune is evaluated once per interior node, before BranchVertex.
	// Returning true stops the subtree (the engine counts it as a cut).
	Prune(e *Engine) bool
}

// Engine holds all search state for one solve call. Constructed once
// per call, discarded when it returns; no state is shared across
// engines, so two Engines can run the same Graph concurrently without
// interfering with each other.
type Engine struct {
	g *graphview.Graph
	n int

	ub        int // best known coloring size (incumbent)
	lbInitial int // greedy clique bound, computed once at init

	bestColor  []int
	colorStack []int
	colored    []bool

	colorClassMask []*bitset.Bitset
	colorsUsed     int

	available    []*bitset.Bitset
	colorCount   [][]int32 // colorCount[v][c]: colored neighbors of v with color c
	satDegree    []int
	uncoloredDeg []int
	uncolored    int

	nodes int64
	cuts  int64

	deadline progress.Deadline
	sink     *progress.Sink
	started  time.Time
	history  []progress.Snapshot
	timedOut bool
}

// New builds an Engine for g, seeding the initial clique lower bound and
// DSATUR upper bound both Sewell and Furini start their search from.
func New(g *graphview.Graph, deadline progress.Deadline, sink *progress.Sink) *Engine {
	n := g.N()
	e := &Engine{
		g:              g,
		n:              n,
		colorClassMask: make([]*bitset.Bitset, n),
		available:      make([]*bitset.Bitset, n),
		colorCount:     make([][]int32, n),
		satDegree:      make([]int, n),
		uncoloredDeg:   make([]int, n),
		colorStack:     make([]int, n),
		colored:        make([]bool, n),
		deadline:       deadline,
		sink:           sink,
		started:        time.Now(),
	}
	for v := 0; v < n; v++ {
		e.colorStack[v] = unassigned
		e.available[v] = bitset.New(n).Complement() // all colors legal initially
		e.colorCount[v] = make([]int32, n)
		e.uncoloredDeg[v] = g.Degree(v)
	}
	e.uncolored = n

	e.lbInitial = heuristics.GreedyCliqueLB(g)
	ubInit, coloring := heuristics.DsaturUB(g)
	e.ub = ubInit
	e.bestColor = append([]int(nil), coloring...)

	return e
}

// Graph returns the immutable graph being colored.
func (e *Engine) Graph() *graphview.Graph { return e.g }

// N returns the vertex count.
func (e *Engine) N() int { return e.n }

// UB returns the current best coloring size.
func (e *Engine) UB() int { return e.ub }

// LBInitial returns the greedy clique lower bound computed at init.
func (e *Engine) LBInitial() int { return e.lbInitial }

// ColorsUsed returns the number of distinct color classes currently open
// in the partial assignment.
func (e *Engine) ColorsUsed() int { return e.colorsUsed }

// Colored reports whether v currently has an assigned color.
func (e *Engine) Colored(v int) bool { return e.colored[v] }

// SatDegree returns v's current saturation degree.
func (e *Engine) SatDegree(v int) int { return e.satDegree[v] }

// UncoloredDeg returns v's degree within the current uncolored subgraph.
func (e *Engine) UncoloredDeg(v int) int { return e.uncoloredDeg[v] }

// Available returns v's available-colors bitset. Read-only: engines
// mutate it only through assign/revert.
func (e *Engine) Available(v int) *bitset.Bitset { return e.available[v] }

// UncoloredCount returns how many vertices remain unassigned.
func (e *Engine) UncoloredCount() int { return e.uncolored }

// Solved returns true once LB meets UB: the search can stop immediately.
func (e *Engine) Solved() bool { return e.lbInitial == e.ub }

// Outcome is the terminal state of a Run, mapped by sewell/furini into
// the public solver.Result shape.
type Outcome struct {
	K        int
	UBInit   int
	LB       int
	Coloring []int
	Optimal  bool
	Nodes    int64
	Cuts     int64
	Elapsed  float64
	Timeout  bool
	History  []progress.Snapshot
}

// Run drives the branch-and-bound search to completion (or deadline) and
// returns the final outcome. ubInit is the DSATUR seed recorded for
// Outcome.UBInit before any improvement.
func (e *Engine) Run(policy Policy) Outcome {
	ubInit := e.ub
	if e.Solved() {
		// The initial clique bound already matches the DSATUR incumbent:
		// optimality is proved by heuristics alone, with a single
		// (root) node visited.
		e.nodes = 1
	} else {
		e.dfs(policy)
	}

	finalLB := e.lbInitial
	if !e.timedOut {
		// Exhaustive completion proves no coloring smaller than the
		// incumbent exists, so the lower bound tightens to match it.
		finalLB = e.ub
	}
	optimal := finalLB == e.ub && !e.timedOut

	elapsed := time.Since(e.started).Seconds()
	final := progress.Snapshot{
		Nodes: e.nodes, UB: e.ub, LB: finalLB, Elapsed: elapsed, Cuts: e.cuts, Done: true,
	}
	e.sink.Post(final)
	e.history = append(e.history, final)

	return Outcome{
		K:        e.ub,
		UBInit:   ubInit,
		LB:       finalLB,
		Coloring: append([]int(nil), e.bestColor...),
		Optimal:  optimal,
		Nodes:    e.nodes,
		Cuts:     e.cuts,
		Elapsed:  elapsed,
		Timeout:  e.timedOut,
		History:  e.history,
	}
}

// dfs runs one level of the shared search recursion: deadline check,
// completion check, policy-specific pruning, branching-vertex
// selection, candidate color enumeration, and assign/recurse/revert.
func (e *Engine) dfs(policy Policy) {
	if e.deadline.Expired() {
		e.timedOut = true

		return
	}
	e.nodes++
	if e.nodes%progress.SnapshotEvery == 0 {
		e.postSnapshot()
	}

	if e.uncolored == 0 {
		k := e.colorsUsed
		if k < e.ub {
			e.commitIncumbent(k)
			e.postSnapshot()
		}

		return
	}

	if policy.Prune(e) {
		e.cuts++

		return
	}

	v := policy.BranchVertex(e)
	for _, c := range e.candidateColors(v) {
		e.assign(v, c)
		e.dfs(policy)
		e.revert(v, c)
		if e.timedOut || e.Solved() {
			return
		}
	}
}

// candidateColors enumerates already-open colors below UB-1 that remain
// available for v, plus the single next-class index while fewer than UB
// classes are open (when UB classes are already open, that skipped
// index is counted as a cut).
func (e *Engine) candidateColors(v int) []int {
	upper := e.colorsUsed - 1
	if limit := e.ub - 2; limit < upper {
		upper = limit
	}
	av := e.available[v]
	cands := make([]int, 0, upper+2)
	for c := 0; c <= upper; c++ {
		if av.Test(c) {
			cands = append(cands, c)
		}
	}
	if e.colorsUsed < e.ub {
		cands = append(cands, e.colorsUsed)
	} else {
		e.cuts++
	}

	return cands
}

// assign colors v with c, updating color-class membership and the
// incremental saturation/availability state of v's uncolored neighbors.
func (e *Engine) assign(v, c int) {
	e.colorStack[v] = c
	e.colored[v] = true
	e.uncolored--

	opened := c == e.colorsUsed
	if opened {
		e.colorsUsed++
		if e.colorClassMask[c] == nil {
			e.colorClassMask[c] = bitset.New(e.n)
		}
	}
	e.colorClassMask[c].Set(v)

	nb := e.g.NeighborsBits(v)
	for u, ok := nb.NextSet(0); ok; u, ok = nb.NextSet(u + 1) {
		if e.colored[u] {
			continue
		}
		e.uncoloredDeg[u]--
		e.colorCount[u][c]++
		if e.colorCount[u][c] == 1 {
			e.satDegree[u]++
			e.available[u].Clear(c)
		}
	}
}

// revert undoes exactly the mutations assign(v, c) performed.
func (e *Engine) revert(v, c int) {
	nb := e.g.NeighborsBits(v)
	for u, ok := nb.NextSet(0); ok; u, ok = nb.NextSet(u + 1) {
		if e.colored[u] {
			continue
		}
		e.colorCount[u][c]--
		if e.colorCount[u][c] == 0 {
			e.satDegree[u]--
			e.available[u].Set(c)
		}
		e.uncoloredDeg[u]++
	}

	e.colorClassMask[c].Clear(v)
	e.colorStack[v] = unassigned
	e.colored[v] = false
	e.uncolored++

	if c == e.colorsUsed-1 && e.colorClassMask[c].IsZero() {
		e.colorsUsed--
	}
}

// commitIncumbent records a new, smaller incumbent coloring.
func (e *Engine) commitIncumbent(k int) {
	e.ub = k
	copy(e.bestColor, e.colorStack)
}

func (e *Engine) postSnapshot() {
	snap := progress.Snapshot{
		Nodes:   e.nodes,
		UB:      e.ub,
		LB:      e.lbInitial,
		Elapsed: time.Since(e.started).Seconds(),
		Cuts:    e.cuts,
	}
	e.sink.Post(snap)
	e.history = append(e.history, snap)
}
