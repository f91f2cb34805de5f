// SPDX-License-Identifier: MIT

package decimate

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/propslim/edges"
	"github.com/katalvlaran/propslim/heap"
	"github.com/katalvlaran/propslim/mesh"
	"github.com/katalvlaran/propslim/quadric"
)

// Decimator simplifies one mesh.Model in place by iterative edge contraction.
// It is the single writer of the model for its whole lifetime and is not safe
// for concurrent use.
type Decimator struct {
	model *mesh.Model
	opts  Options
	dim   quadric.Dim
	log   *zap.Logger

	quadrics []quadric.Quadric // per vertex, indexed like the model
	reg      *edges.Registry
	heap     *heap.Heap
	parked   []int // link-condition rejects waiting for the next contraction

	state State
}

// New prepares a decimator for model. Texture tracking is enabled only when
// requested and every vertex of model carries a texture coordinate.
//
// Errors:
//   - ErrNilModel.
func New(model *mesh.Model, opts ...Option) (*Decimator, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Decimator{
		model: model,
		opts:  o,
		dim:   quadric.Dim3,
		log:   o.Logger.Named("decimate"),
	}
	if o.Texture {
		if model.HasTexCoords() {
			d.dim = quadric.Dim5
		} else {
			d.log.Warn("texture tracking requested but mesh has no texcoords; using 3-D quadrics")
		}
	}

	return d, nil
}

// Initialize runs the protect hook, accumulates per-vertex quadrics, adds
// boundary constraints and fills the edge registry and heap.
// Decimate calls it on demand; calling it twice returns ErrState.
//
// Complexity:
//   - Time O(F + E·log E) with E ≈ 3F/2, Space O(V + E).
func (d *Decimator) Initialize() error {
	if d.state != StateUninitialized {
		return fmt.Errorf("Initialize: state %s: %w", d.state, ErrState)
	}
	if d.opts.Protect != nil {
		d.opts.Protect(d.model)
	}

	degenerate := d.collectQuadrics()
	boundary := 0
	if d.opts.BoundaryWeight > 0 {
		boundary = d.constrainBoundaries()
	}
	d.collectEdges()
	d.state = StateInitialized

	d.log.Info("initialized",
		zap.Stringer("dim", d.dim),
		zap.Int("vertices", d.model.ValidVertexCount()),
		zap.Int("faces", d.model.ValidFaceCount()),
		zap.Int("edges", d.reg.Live()),
		zap.Int("boundaryEdges", boundary),
		zap.Int("degenerateFaces", degenerate),
	)

	return nil
}

// collectQuadrics sums the (weighted) plane quadric of every valid face into
// its three corners and returns the number of degenerate faces skipped.
func (d *Decimator) collectQuadrics() int {
	m := d.model
	d.quadrics = make([]quadric.Quadric, m.VertexCount())
	for v := range d.quadrics {
		d.quadrics[v] = quadric.New(d.dim)
	}

	degenerate := 0
	for f := 0; f < m.FaceCount(); f++ {
		if !m.FaceIsValid(f) {
			continue
		}
		q, ok := d.faceQuadric(f)
		if !ok {
			degenerate++
			d.log.Warn("degenerate face contributes no quadric", zap.Int("face", f))
			continue
		}
		for _, v := range m.Face(f).V {
			d.quadrics[v].Add(&q)
		}
	}

	return degenerate
}

// faceQuadric returns the quadric face f contributes to each of its corners.
func (d *Decimator) faceQuadric(f int) (quadric.Quadric, bool) {
	p := d.model.FacePoints(f, d.dim)
	q, ok := quadric.FromTriangle(d.dim, p[0], p[1], p[2])
	if ok && d.opts.Weighting == WeightArea {
		q.Scale(q.Area())
	}

	return q, ok
}

// constrainBoundaries adds a perpendicular constraint plane for every
// boundary edge to both endpoints and returns the number of such edges.
func (d *Decimator) constrainBoundaries() int {
	m := d.model
	count := 0
	for f := 0; f < m.FaceCount(); f++ {
		if !m.FaceIsValid(f) {
			continue
		}
		n := m.FaceNormal(f)
		fv := m.Face(f).V
		for i := 0; i < 3; i++ {
			a, b := fv[i], fv[(i+1)%3]
			if !m.IsBoundaryEdge(a, b) {
				continue
			}
			q, ok := quadric.BoundaryConstraint(d.dim, m.Position(a), m.Position(b), n)
			if !ok {
				continue
			}
			if d.opts.Weighting == WeightArea {
				q.Scale(q.Area())
			}
			q.Scale(d.opts.BoundaryWeight)
			d.quadrics[a].Add(&q)
			d.quadrics[b].Add(&q)
			count++
		}
	}

	return count
}

// collectEdges creates one edge per adjacent vertex pair (visiting each
// undirected pair once, from its lower index) and queues all of them.
func (d *Decimator) collectEdges() {
	m := d.model
	d.reg = edges.New(m.VertexCount())
	for v := 0; v < m.VertexCount(); v++ {
		if !m.VertexIsValid(v) {
			continue
		}
		for _, u := range m.VertexStar(v) {
			if u < v {
				continue
			}
			if _, err := d.reg.Create(v, u); err != nil {
				d.log.Debug("edge not created", zap.Int("v1", v), zap.Int("v2", u), zap.Error(err))
			}
		}
	}

	d.heap = heap.New(d.reg.Len())
	for id := 0; id < d.reg.Len(); id++ {
		d.computeCost(id)
	}
}

// Decimate contracts edges in order of increasing error until at most target
// valid faces remain. It returns with StateDone when the target is reached
// and StateFailed when no acceptable edge is left. Neither is an error.
// ctx is checked before every contraction; a cancelled run keeps every
// contraction applied so far and may be resumed by calling Decimate again.
//
// A closed manifold loses two faces per contraction, so an odd target can be
// undershot by one.
//
// Errors:
//   - ErrBadTarget when target <= 0.
//   - ErrState when called re-entrantly from an OnContract hook.
//   - ctx.Err(), wrapped, on cancellation.
func (d *Decimator) Decimate(ctx context.Context, target int) (Result, error) {
	var res Result
	if target <= 0 {
		return d.finish(res), fmt.Errorf("Decimate(%d): %w", target, ErrBadTarget)
	}
	switch d.state {
	case StateUninitialized:
		if err := d.Initialize(); err != nil {
			return d.finish(res), err
		}
	case StateRunning:
		return d.finish(res), fmt.Errorf("Decimate(%d): state %s: %w", target, d.state, ErrState)
	}

	if d.model.ValidFaceCount() <= target {
		d.state = StateDone
		return d.finish(res), nil
	}

	d.state = StateRunning
	for d.model.ValidFaceCount() > target {
		if err := ctx.Err(); err != nil {
			d.state = StateInitialized
			d.log.Info("cancelled", zap.Int("faces", d.model.ValidFaceCount()), zap.Error(err))
			return d.finish(res), fmt.Errorf("Decimate(%d): %w", target, err)
		}

		id, key, ok := d.heap.ExtractMax()
		if !ok {
			d.state = StateFailed
			d.log.Warn("no contractible edge left",
				zap.Int("target", target),
				zap.Int("faces", d.model.ValidFaceCount()),
				zap.Int("parked", len(d.parked)),
			)
			return d.finish(res), nil
		}
		if d.contract(id, -key) {
			res.Contractions++
		} else {
			res.Skipped++
		}
	}
	d.state = StateDone
	d.log.Info("target reached",
		zap.Int("target", target),
		zap.Int("faces", d.model.ValidFaceCount()),
		zap.Int("contractions", res.Contractions),
	)

	return d.finish(res), nil
}

// contract applies edge id if it is still acceptable. It reports whether
// the model changed.
func (d *Decimator) contract(id int, cost float64) bool {
	e, ok := d.reg.Get(id)
	if !ok {
		return false
	}

	// 1) Stale or protected endpoints: drop the edge.
	c, err := d.model.ComputeContraction(e.V1, e.V2)
	if err != nil {
		d.log.Debug("edge rejected", zap.Int("edge", id), zap.Error(err))
		return false
	}

	// 2) Topology would change: retry after the neighbourhood does.
	if d.opts.PreserveTopology && !d.model.LinkConditionHolds(e.V1, e.V2) {
		d.parked = append(d.parked, id)
		return false
	}

	// 3) Mesh first; it re-checks the pair and leaves the model intact on error.
	killed, err := d.model.ApplyContraction(c, e.Target, d.dim)
	if err != nil {
		d.log.Debug("contraction failed", zap.Int("edge", id), zap.Error(err))
		return false
	}

	// 4) Edges of V2 move to V1; collapsed and parallel ones leave the heap.
	if err := d.reg.Merge(e.V1, e.V2, func(x int) { d.heap.Remove(x) }); err != nil {
		d.log.Error("edge merge failed", zap.Int("edge", id), zap.Error(err))
	}

	// 5) Q(v1) ← Q(v1) + Q(v2); every edge of v1 gets a fresh cost.
	d.quadrics[e.V1].Add(&d.quadrics[e.V2])
	for _, x := range d.reg.Edges(e.V1) {
		d.computeCost(x)
	}
	d.unpark()

	d.log.Debug("contracted",
		zap.Int("edge", id),
		zap.Int("v1", e.V1),
		zap.Int("v2", e.V2),
		zap.Float64("error", cost),
		zap.Int("killed", len(killed)),
	)
	if d.opts.OnContract != nil {
		d.opts.OnContract(Event{
			Edge:   id,
			V1:     e.V1,
			V2:     e.V2,
			Target: e.Target,
			Error:  cost,
			Killed: len(killed),
			Faces:  d.model.ValidFaceCount(),
		})
	}

	return true
}

// computeCost recomputes placement and error of edge id and (re)queues it.
func (d *Decimator) computeCost(id int) {
	e, ok := d.reg.Get(id)
	if !ok {
		return
	}
	q := quadric.Sum(d.quadrics[e.V1], d.quadrics[e.V2])
	p1 := d.model.VertexPoint(e.V1, d.dim)
	p2 := d.model.VertexPoint(e.V2, d.dim)
	target, cost := d.place(&q, p1, p2)

	if d.opts.FlipPenalty > 0 {
		if c, err := d.model.ComputeContraction(e.V1, e.V2); err == nil {
			cost += d.opts.FlipPenalty * float64(d.model.FlipCount(c, target.Vec3()))
		}
	}
	if math.IsNaN(cost) {
		cost = math.Inf(1)
	}

	_ = d.reg.SetCost(id, target, cost)
	if err := d.heap.Upsert(id, -cost, d.tie(e)); err != nil {
		d.log.Error("heap update failed", zap.Int("edge", id), zap.Error(err))
	}
}

// unpark returns the link-condition rejects to the heap with their last cost.
func (d *Decimator) unpark() {
	for _, id := range d.parked {
		e, ok := d.reg.Get(id)
		if !ok || d.heap.Contains(id) {
			continue
		}
		_ = d.heap.Insert(id, -e.Error, d.tie(e))
	}
	d.parked = d.parked[:0]
}

// tie is the secondary heap order of e.
func (d *Decimator) tie(e edges.Edge) uint64 {
	if !d.opts.DeterministicTies {
		return 0
	}
	lo, hi := e.V1, e.V2
	if lo > hi {
		lo, hi = hi, lo
	}

	return uint64(uint32(lo))<<32 | uint64(uint32(hi))
}

func (d *Decimator) finish(res Result) Result {
	if d.heap != nil {
		d.unpark()
	}
	res.State = d.state
	res.Faces = d.model.ValidFaceCount()
	res.Vertices = d.model.ValidVertexCount()

	return res
}

// State returns the lifecycle state.
func (d *Decimator) State() State { return d.state }

// Dim returns the quadric dimension in use: Dim5 with texture tracking.
func (d *Decimator) Dim() quadric.Dim { return d.dim }

// Model returns the mesh being simplified.
func (d *Decimator) Model() *mesh.Model { return d.model }

// Quadric returns a copy of the accumulated quadric of vertex v.
// It panics before Initialize or when v is out of range.
func (d *Decimator) Quadric(v int) quadric.Quadric { return d.quadrics[v] }

// Registry exposes the candidate edges for inspection. Nil before Initialize.
func (d *Decimator) Registry() *edges.Registry { return d.reg }

// Heap exposes the priority queue for inspection. Nil before Initialize.
func (d *Decimator) Heap() *heap.Heap { return d.heap }
