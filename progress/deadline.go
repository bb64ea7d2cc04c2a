package progress

import "time"

// Deadline wraps a monotonic wall-clock budget. The B&B engine checks
// Expired once per node, the same per-node placement tsp/bb.go's
// deadlineCheck uses for its own Branch-and-Bound; progress snapshots
// are the ones gated behind a counter (see SnapshotEvery).
type Deadline struct {
	at      time.Time
	enabled bool
}

// NewDeadline returns a Deadline that expires after d from now. A
// non-positive d disables the deadline (Expired always returns false),
// matching "TimeLimit == 0 means no limit" conventions elsewhere in the
// corpus (tsp.Options.TimeLimit).
func NewDeadline(d time.Duration) Deadline {
	if d <= 0 {
		return Deadline{}
	}

	return Deadline{at: time.Now().Add(d), enabled: true}
}

// Now returns a Deadline that has already expired — useful for modeling
// an external cancellation signal without threading a context through
// the engine.
func Now() Deadline {
	return Deadline{at: time.Now(), enabled: true}
}

// Expired reports whether the budget has been exceeded.
func (d Deadline) Expired() bool {
	return d.enabled && time.Now().After(d.at)
}
