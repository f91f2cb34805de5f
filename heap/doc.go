// SPDX-License-Identifier: MIT

// Package heap provides an indexed binary max-heap over integer element IDs.
//
// Unlike container/heap, the structure tracks the slot of every element, so
// an element whose key changed can be re-sifted in O(log n) and an arbitrary
// element can be removed by identity. Elements are plain arena indices (for
// example edge IDs of an edge registry); the heap never holds pointers.
//
// Ordering:
//
//   - The element with the largest key sits at the root.
//   - Equal keys are ordered by the tie value: the smaller tie wins.
//     Passing tie = 0 for every element leaves equal keys in whatever order the
//     sift operations produce, i.e. dependent on insertion order.
//
// Invariants (checked by Validate):
//
//   - key(parent) ≥ key(child) for every internal node (ties as above).
//   - Position(id) == slot for every stored element, and -1 otherwise.
//
// Complexity:
//
//   - Insert, ExtractMax, Update, Remove: O(log n). Top, Contains, Key: O(1).
//
// Thread safety:
//
//   - A Heap is not safe for concurrent use; the decimation driver owns it.
package heap
