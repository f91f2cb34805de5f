// SPDX-License-Identifier: MIT

// Package decimate simplifies triangle meshes by iterative edge contraction
// ordered by quadric error (Garland–Heckbert), in the PropSlim generalisation
// that optionally tracks texture coordinates in a 5-D quadric space.
//
// Every vertex carries a quadric: the sum of the squared-distance forms of its
// incident faces, plus heavily weighted constraint planes along open
// boundaries. The cost of contracting an edge is the combined quadric of its
// endpoints evaluated at the best placement for the merged vertex. Edges are
// kept in an indexed max-heap keyed by negated cost, so the cheapest edge is
// always at the root.
//
// Lifecycle:
//
//	Uninitialized ──Initialize──▶ Initialized ──Decimate──▶ Running ──▶ Done | Failed
//
// Decimate initializes on demand and may be called again with a lower target
// after Done or Failed. Failed means no acceptable edge was left before the
// target was met (for instance every vertex is protected); it is reported in
// Result.State, not as an error.
//
// Main loop, until the valid face count is at most the target:
//
//  1. Pop the cheapest edge. An empty heap ends the run as Failed.
//  2. Drop it when an endpoint is merged or protected.
//  3. With topology preservation on, park it when the link condition fails;
//     parked edges return to the heap after the next successful contraction.
//  4. Apply the contraction to the mesh, move the edges of the merged vertex
//     to the survivor, add the quadrics and re-cost every edge of the survivor.
//
// Options:
//
//	– WithBoundaryWeight(w):     boundary constraint scale, default 1000; 0 disables.
//	– WithTexture(on):           5-D quadrics over position and texcoord.
//	– WithPlacement(p):          Optimal (default), Line, EndOrMid, Endpoints.
//	– WithWeighting(w):          Area (default) or Uniform face weighting.
//	– WithPreserveTopology(on):  link-condition check, default on.
//	– WithFlipPenalty(p):        error added per face that would fold over.
//	– WithDeterministicTies(on): break cost ties by endpoint pair.
//	– WithProtect(fn):           pin vertices before initialization.
//	– WithOnContract(fn):        observe each contraction.
//	– WithLogger(l):             zap logger, default no-op.
//
// Errors (sentinel):
//
//	– ErrNilModel   New without a model.
//	– ErrBadTarget  non-positive target face count.
//	– ErrState      Initialize twice, or Decimate re-entered from a hook.
//	– ErrUnknownPolicy  ParsePlacement or ParseWeighting on an unknown name.
//
// Example usage:
//
//	d, err := decimate.New(m, decimate.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	res, err := d.Decimate(ctx, 1000)
//	if err != nil {
//	    return err
//	}
//	if res.State == decimate.StateFailed {
//	    log.Warn("target not reached", zap.Int("faces", res.Faces))
//	}
package decimate
