package progress

import "sync/atomic"

// SnapshotEvery is the B&B node-count cadence at which engines post a
// progress snapshot (in addition to posting on every UB improvement).
const SnapshotEvery = 500

// Snapshot is a point-in-time view of a running search, delivered to a
// Sink. Done is true only on the terminal snapshot of a solve.
type Snapshot struct {
	Nodes   int64
	UB      int
	LB      int
	Elapsed float64
	Cuts    int64
	Done    bool
}

// Sink is a non-blocking, single-slot observer channel. A producer
// (the running engine) calls Post; a consumer polls with Drain at its
// own cadence. The zero value is ready to use.
type Sink struct {
	slot atomic.Pointer[Snapshot]
}

// NewSink returns a ready-to-use Sink. Provided for symmetry with other
// constructors in the package family; &Sink{} works identically.
func NewSink() *Sink { return &Sink{} }

// Post overwrites the latest pending snapshot. Never blocks.
func (s *Sink) Post(snap Snapshot) {
	s.slot.Store(&snap)
}

// Drain returns the most recently posted snapshot not yet drained, and
// true, or the zero Snapshot and false if nothing is pending.
func (s *Sink) Drain() (Snapshot, bool) {
	p := s.slot.Swap(nil)
	if p == nil {
		return Snapshot{}, false
	}

	return *p, true
}
