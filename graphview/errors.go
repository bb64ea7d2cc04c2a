// Package graphview: sentinel error set.
//
// Error policy follows the teacher's convention (see matrix/errors.go in
// the reference corpus): only sentinel variables are exposed; callers
// branch with errors.Is; sentinels are never %w-wrapped at the
// definition site. ErrInvalidInput is the umbrella sentinel every
// construction-time failure wraps, so callers that only care "was this
// bad input" can check a single error without enumerating every cause.
package graphview

import "errors"

var (
	// ErrInvalidInput is the umbrella sentinel wrapping every CSR/DIMACS
	// integrity violation raised before a solve begins.
	ErrInvalidInput = errors.New("graphview: invalid input")

	// ErrNoVertices indicates n == 0, or a DIMACS file whose "p" line
	// never appeared.
	ErrNoVertices = errors.New("graphview: graph has no vertices")

	// ErrOutOfRange indicates an adjacency entry outside [0, n).
	ErrOutOfRange = errors.New("graphview: adjacency index out of range")

	// ErrRowStartOrder indicates row_start is not non-decreasing.
	ErrRowStartOrder = errors.New("graphview: row_start is not non-decreasing")

	// ErrAsymmetricEdge indicates (u,v) appears without its mirror (v,u).
	ErrAsymmetricEdge = errors.New("graphview: adjacency is not symmetric")

	// ErrSelfLoop indicates adj_flat[v] == v for some vertex v.
	ErrSelfLoop = errors.New("graphview: self-loop is not allowed")
)
