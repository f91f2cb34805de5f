// SPDX-License-Identifier: MIT

// Package mesh holds the triangle mesh model that the decimator edits in place.
//
// Storage is arena-based: vertices and faces live in slices and are addressed
// by their integer index for the whole lifetime of a Model. Nothing is ever
// physically removed. A contraction tombstones the merged vertex and the
// collapsed faces by clearing their valid flag, so every index handed out
// earlier (edge records, heap entries, external tags) stays meaningful.
//
// Vertex lifecycle:
//
//	LIVE ──contraction──▶ MERGED   (terminal)
//
// A protected vertex is LIVE forever: ComputeContraction and ApplyContraction
// refuse to touch it.
//
// Each vertex keeps the list of valid faces incident to it (its "neighbors"),
// which gives O(deg) one-ring queries:
//
//   - Neighbors(v):     incident valid faces.
//   - VertexStar(v):    adjacent vertices (one-ring), ascending.
//   - EdgeFaces(a, b):  valid faces containing both a and b.
//
// Contraction protocol (merge v2 into v1):
//
//  1. ComputeContraction validates the pair and splits the affected faces into
//     dead faces (containing both vertices) and delta faces (faces of v2 that
//     survive and will be rewritten to reference v1).
//  2. ApplyContraction moves v1 to the target placement, kills the dead faces,
//     rewrites the delta faces, removes any duplicate face pair the rewrite
//     produced, and tombstones v2.
//
// Export:
//
//   - Compact packs live vertices and faces into dense, renumbered arrays.
//   - MergeQuads greedily fuses coplanar, same-tag, convex triangle pairs of a
//     compacted mesh into quadrilaterals.
//
// Thread safety:
//
//   - A Model is not safe for concurrent mutation. During a decimation run the
//     driver is its only writer.
package mesh
