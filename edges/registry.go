// SPDX-License-Identifier: MIT

package edges

import (
	"fmt"

	"github.com/katalvlaran/propslim/quadric"
)

// Registry owns all candidate edges and the per-vertex edge lists.
// The zero value is not usable; call New.
type Registry struct {
	arena []Edge
	adj   [][]int // adj[v] = live edge IDs touching v
	live  int
}

// New returns an empty registry for vertexCount vertices.
func New(vertexCount int) *Registry {
	if vertexCount < 0 {
		vertexCount = 0
	}

	return &Registry{adj: make([][]int, vertexCount)}
}

// VertexCount returns the number of vertices the registry was sized for.
func (r *Registry) VertexCount() int { return len(r.adj) }

// Len returns the arena size, including removed edges. IDs are in [0, Len()).
func (r *Registry) Len() int { return len(r.arena) }

// Live returns the number of live edges.
func (r *Registry) Live() int { return r.live }

func (r *Registry) inRange(v int) bool { return v >= 0 && v < len(r.adj) }

// Create registers the pair (v1, v2) and returns its ID.
//
// Errors:
//   - ErrBadVertex, ErrSameVertex, ErrDuplicate.
func (r *Registry) Create(v1, v2 int) (int, error) {
	if !r.inRange(v1) || !r.inRange(v2) {
		return -1, fmt.Errorf("Create(%d,%d): %w", v1, v2, ErrBadVertex)
	}
	if v1 == v2 {
		return -1, fmt.Errorf("Create(%d,%d): %w", v1, v2, ErrSameVertex)
	}
	if _, ok := r.Find(v1, v2); ok {
		return -1, fmt.Errorf("Create(%d,%d): %w", v1, v2, ErrDuplicate)
	}
	id := len(r.arena)
	r.arena = append(r.arena, Edge{V1: v1, V2: v2, alive: true})
	r.adj[v1] = append(r.adj[v1], id)
	r.adj[v2] = append(r.adj[v2], id)
	r.live++

	return id, nil
}

// Get returns a copy of edge id. ok is false for unknown or removed IDs.
func (r *Registry) Get(id int) (Edge, bool) {
	if id < 0 || id >= len(r.arena) || !r.arena[id].alive {
		return Edge{}, false
	}

	return r.arena[id], true
}

// SetCost stores the placement and error computed for edge id.
func (r *Registry) SetCost(id int, target quadric.Point, cost float64) error {
	if _, ok := r.Get(id); !ok {
		return fmt.Errorf("SetCost(%d): %w", id, ErrNotFound)
	}
	r.arena[id].Target = target
	r.arena[id].Error = cost

	return nil
}

// Edges returns the live edge IDs touching v. The slice is owned by the
// registry and is invalidated by the next mutation.
func (r *Registry) Edges(v int) []int {
	if !r.inRange(v) {
		return nil
	}

	return r.adj[v]
}

// Find returns the live edge joining a and b.
//
// Complexity:
//   - Time O(min(deg a, deg b)).
func (r *Registry) Find(a, b int) (int, bool) {
	if !r.inRange(a) || !r.inRange(b) {
		return -1, false
	}
	if len(r.adj[b]) < len(r.adj[a]) {
		a, b = b, a
	}
	for _, id := range r.adj[a] {
		if r.arena[id].Other(a) == b {
			return id, true
		}
	}

	return -1, false
}

// Other returns the endpoint of edge id opposite to v, or -1.
func (r *Registry) Other(id, v int) int {
	if id < 0 || id >= len(r.arena) {
		return -1
	}

	return r.arena[id].Other(v)
}

// Relink moves the endpoint from of edge id to vertex to.
//
// Errors:
//   - ErrNotFound, ErrBadVertex, ErrNotIncident.
//   - ErrSameVertex when to is the other endpoint.
//   - ErrDuplicate when the resulting pair already exists.
func (r *Registry) Relink(id, from, to int) error {
	e, ok := r.Get(id)
	if !ok {
		return fmt.Errorf("Relink(%d): %w", id, ErrNotFound)
	}
	if !r.inRange(to) {
		return fmt.Errorf("Relink(%d,%d→%d): %w", id, from, to, ErrBadVertex)
	}
	other := e.Other(from)
	if other < 0 {
		return fmt.Errorf("Relink(%d,%d→%d): %w", id, from, to, ErrNotIncident)
	}
	if other == to {
		return fmt.Errorf("Relink(%d,%d→%d): %w", id, from, to, ErrSameVertex)
	}
	if _, dup := r.Find(other, to); dup {
		return fmt.Errorf("Relink(%d,%d→%d): %w", id, from, to, ErrDuplicate)
	}

	if e.V1 == from {
		r.arena[id].V1 = to
	} else {
		r.arena[id].V2 = to
	}
	r.adj[from] = removeID(r.adj[from], id)
	r.adj[to] = append(r.adj[to], id)

	return nil
}

// Remove unregisters edge id. The ID is never reused.
func (r *Registry) Remove(id int) error {
	e, ok := r.Get(id)
	if !ok {
		return fmt.Errorf("Remove(%d): %w", id, ErrNotFound)
	}
	r.arena[id].alive = false
	r.adj[e.V1] = removeID(r.adj[e.V1], id)
	r.adj[e.V2] = removeID(r.adj[e.V2], id)
	r.live--

	return nil
}

// Merge moves the edges of v2 onto v1 as part of contracting v2 into v1.
// Edges joining v1 and v2, and edges (v2, w) for which (v1, w) already
// exists, are passed to discard and then removed. All remaining edges of v2
// are relinked to v1. Afterwards v2 has no edges.
//
// Complexity:
//   - Time O(deg(v2) · min(deg v1, deg w)).
func (r *Registry) Merge(v1, v2 int, discard func(id int)) error {
	if !r.inRange(v1) || !r.inRange(v2) {
		return fmt.Errorf("Merge(%d,%d): %w", v1, v2, ErrBadVertex)
	}
	if v1 == v2 {
		return fmt.Errorf("Merge(%d,%d): %w", v1, v2, ErrSameVertex)
	}

	moving := append([]int(nil), r.adj[v2]...)
	for _, id := range moving {
		w := r.arena[id].Other(v2)
		_, dup := r.Find(v1, w)
		if w == v1 || dup {
			if discard != nil {
				discard(id)
			}
			if err := r.Remove(id); err != nil {
				return fmt.Errorf("Merge(%d,%d): %w", v1, v2, err)
			}
			continue
		}
		if err := r.Relink(id, v2, v1); err != nil {
			return fmt.Errorf("Merge(%d,%d): %w", v1, v2, err)
		}
	}
	r.adj[v2] = nil

	return nil
}

// Validate checks the registry invariants listed in the package doc.
func (r *Registry) Validate() error {
	seen := make(map[[2]int]int, r.live)
	count := 0
	for id, e := range r.arena {
		if !e.alive {
			continue
		}
		count++
		if !r.inRange(e.V1) || !r.inRange(e.V2) || e.V1 == e.V2 {
			return fmt.Errorf("%w: edge %d has endpoints (%d,%d)", ErrCorrupt, id, e.V1, e.V2)
		}
		k := pairKey(e.V1, e.V2)
		if prev, dup := seen[k]; dup {
			return fmt.Errorf("%w: edges %d and %d both join %v", ErrCorrupt, prev, id, k)
		}
		seen[k] = id
		if occurrences(r.adj[e.V1], id) != 1 || occurrences(r.adj[e.V2], id) != 1 {
			return fmt.Errorf("%w: edge %d not listed once per endpoint", ErrCorrupt, id)
		}
	}
	if count != r.live {
		return fmt.Errorf("%w: live count %d, arena holds %d", ErrCorrupt, r.live, count)
	}
	for v, ids := range r.adj {
		for _, id := range ids {
			if id < 0 || id >= len(r.arena) || !r.arena[id].alive || !r.arena[id].Has(v) {
				return fmt.Errorf("%w: vertex %d lists foreign edge %d", ErrCorrupt, v, id)
			}
		}
	}

	return nil
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

func occurrences(s []int, id int) int {
	n := 0
	for _, x := range s {
		if x == id {
			n++
		}
	}

	return n
}

func removeID(s []int, id int) []int {
	for i, x := range s {
		if x == id {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
