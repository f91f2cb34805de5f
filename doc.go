// Package propslim simplifies triangle meshes with quadric error metrics.
//
// 🚀 What is propslim?
//
//	A pure-Go implementation of QSlim edge contraction and its PropSlim
//	generalisation that carries texture coordinates through the quadrics:
//		• Quadrics: 3-D and 5-D error forms, optimal and segment placement
//		• Mesh model: indexed triangles with tombstones, protection and tags
//		• Edge registry: per-vertex incidence with merge and relink
//		• Indexed max-heap: O(log n) update and removal by edge ID
//		• Decimator: boundary constraints, link condition, flip penalty
//		• Export: compaction and optional triangle-to-quad merging
//
// ✨ Why choose propslim?
//
//   - Deterministic – optional endpoint-pair tie-breaking for reproducible runs
//   - Resumable – cancel with a context and continue later
//   - Observable – zap logging and a per-contraction hook
//
// Packages:
//
//	matrix/     small dense matrices, LU factorisation and solves
//	quadric/    quadric error forms over position (+ texcoord) points
//	mesh/       the mutable triangle model, contraction and export
//	edges/      candidate edge registry keyed by vertex
//	heap/       indexed max-heap of edge IDs
//	decimate/   the simplification driver
//	builder/    procedural test meshes (solids, icospheres, grids)
//	cmd/propslim  command line: config, logging and a YAML report
//
// Quick example:
//
//	m, _ := builder.Build(nil, builder.Icosphere(3))
//	d, _ := decimate.New(m, decimate.WithLogger(log))
//	res, _ := d.Decimate(ctx, 320)
//	out := m.Compact()
//
//	go get github.com/katalvlaran/propslim
package propslim
