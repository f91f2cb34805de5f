// SPDX-License-Identifier: MIT

// Package builder provides reusable "functional-options"-style constructors
// for canonical triangle meshes used by tests, examples and the propslim
// command.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – Build(opts, cons...): creates a mesh.Model, resolves options and runs
//     constructors in order. Several constructors yield disjoint components.
//   - Closed solids (outward, counter-clockwise faces):
//     – Tetrahedron, Octahedron, Cube, Icosahedron, Icosphere(subdivisions).
//   - Open sheets (normals along +Z):
//     – Grid(rows, cols): rows×cols cells, two triangles each.
//     – QuadFan(): a square of four triangles around a centre vertex.
//   - Options:
//     – WithScale, WithCenter: affine placement of every emitted vertex.
//     – WithTexCoords: spherical (solids) or planar (sheets) UVs.
//     – WithTag: tag stamped on every emitted face.
//   - ShapeByName(name, param): constructor lookup for configuration files.
//
// Guarantees:
//
//   - Deterministic: the same options and constructors yield identical
//     vertex and face arrays.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooSmall, ErrTooLarge,
//     ErrUnknownShape, ErrConstructFailed) wrapped with the constructor name.
package builder
