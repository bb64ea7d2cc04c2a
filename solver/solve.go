package solver

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/coloring-lab/chromacore/furini"
	"github.com/coloring-lab/chromacore/graphview"
	"github.com/coloring-lab/chromacore/internal/bbengine"
	"github.com/coloring-lab/chromacore/progress"
	"github.com/coloring-lab/chromacore/sewell"
)

// Solve dispatches to the requested engine and returns a fixed-shape
// Result. timeLimit <= 0 means no deadline. sink may be nil.
func Solve(variant Variant, g *graphview.Graph, timeLimit time.Duration, sink *progress.Sink) (Result, error) {
	var outcome bbengine.Outcome
	switch variant {
	case Sewell:
		outcome = sewell.Solve(g, timeLimit, sink)
	case Furini:
		outcome = furini.Solve(g, timeLimit, sink)
	default:
		return Result{}, ErrUnsupportedVariant
	}

	return fromOutcome(variant, outcome), nil
}

// Race runs Sewell and Furini concurrently on the same immutable graph,
// each with its own progress.Sink, and returns both results -- a caller
// unsure which engine will close out fastest on a given instance can
// just run both and compare.
func Race(g *graphview.Graph, timeLimit time.Duration, sewellSink, furiniSink *progress.Sink) (sewellResult, furiniResult Result, err error) {
	var group errgroup.Group
	var sewellErr, furiniErr error

	group.Go(func() error {
		sewellResult, sewellErr = Solve(Sewell, g, timeLimit, sewellSink)

		return sewellErr
	})
	group.Go(func() error {
		furiniResult, furiniErr = Solve(Furini, g, timeLimit, furiniSink)

		return furiniErr
	})

	if waitErr := group.Wait(); waitErr != nil {
		return Result{}, Result{}, waitErr
	}

	return sewellResult, furiniResult, nil
}

func fromOutcome(variant Variant, o bbengine.Outcome) Result {
	return Result{
		Algo:     variant.String(),
		K:        o.K,
		Coloring: o.Coloring,
		LB:       o.LB,
		UBInit:   o.UBInit,
		Optimal:  o.Optimal,
		Nodes:    o.Nodes,
		Cuts:     o.Cuts,
		Elapsed:  o.Elapsed,
		Timeout:  o.Timeout,
		History:  o.History,
	}
}
