// SPDX-License-Identifier: MIT

// Package edges is the registry of candidate contraction pairs.
//
// Every edge is an unordered vertex pair (V1, V2) together with its cached
// optimal placement (Target) and the quadric error at that placement. Edges
// live in an arena and are addressed by integer ID; the ID doubles as the
// heap identifier in the decimation driver, so an ID is never reused.
//
// For each vertex the registry keeps the list of live edge IDs touching it.
// Invariants checked by Validate:
//
//   - a live edge appears exactly once in the list of each of its endpoints;
//   - every ID in a vertex list is live and incident to that vertex;
//   - no two live edges join the same unordered pair.
//
// Merge implements the edge side of a vertex contraction (v2 into v1): edges
// of v2 that join v1, or that would duplicate an edge v1 already has, are
// discarded through a callback so the caller can drop them from its queue;
// the others are relinked to v1.
package edges
