// SPDX-License-Identifier: MIT

package edges

import (
	"errors"

	"github.com/katalvlaran/propslim/quadric"
)

// Sentinel errors returned by Registry methods.
var (
	// ErrBadVertex indicates a vertex index outside the registry.
	ErrBadVertex = errors.New("edges: vertex out of range")

	// ErrSameVertex indicates a self-loop request.
	ErrSameVertex = errors.New("edges: endpoints are equal")

	// ErrDuplicate indicates the unordered pair already has a live edge.
	ErrDuplicate = errors.New("edges: edge already exists")

	// ErrNotFound indicates an unknown or removed edge ID.
	ErrNotFound = errors.New("edges: edge not found")

	// ErrNotIncident indicates a vertex that is not an endpoint of the edge.
	ErrNotIncident = errors.New("edges: vertex is not an endpoint")

	// ErrCorrupt is returned by Validate when adjacency lists disagree with the arena.
	ErrCorrupt = errors.New("edges: registry corrupted")
)

// Edge is a candidate contraction pair with its cached cost.
type Edge struct {
	V1, V2 int
	Target quadric.Point // optimal placement of the merged vertex
	Error  float64       // quadric error at Target
	alive  bool
}

// Alive reports whether the edge is still registered.
func (e Edge) Alive() bool { return e.alive }

// Has reports whether v is an endpoint.
func (e Edge) Has(v int) bool { return e.V1 == v || e.V2 == v }

// Other returns the endpoint opposite to v, or -1 when v is not an endpoint.
func (e Edge) Other(v int) int {
	switch v {
	case e.V1:
		return e.V2
	case e.V2:
		return e.V1
	default:
		return -1
	}
}
