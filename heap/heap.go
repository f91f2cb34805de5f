// SPDX-License-Identifier: MIT

package heap

import (
	"errors"
	"fmt"
	"math"
)

// NotInHeap is the position reported for elements that are not stored.
const NotInHeap = -1

// Sentinel errors.
var (
	// ErrDuplicate indicates Insert of an element already in the heap.
	ErrDuplicate = errors.New("heap: element already present")

	// ErrNotFound indicates Update of an element that is not in the heap.
	ErrNotFound = errors.New("heap: element not present")

	// ErrBadID indicates a negative element ID.
	ErrBadID = errors.New("heap: negative element id")

	// ErrBadKey indicates a NaN key.
	ErrBadKey = errors.New("heap: key is NaN")

	// ErrCorrupt is returned by Validate when an invariant is broken.
	ErrCorrupt = errors.New("heap: invariant violated")
)

// entry is one heap slot.
type entry struct {
	id  int     // element identity (arena index)
	key float64 // priority; larger is better
	tie uint64  // secondary order on equal keys; smaller is better
}

// Heap is an indexed max-heap. The zero value is an empty heap ready to use.
type Heap struct {
	items []entry
	pos   []int // pos[id] = slot of id, or NotInHeap
}

// New returns an empty heap with room for capacity elements.
func New(capacity int) *Heap {
	if capacity < 0 {
		capacity = 0
	}

	return &Heap{
		items: make([]entry, 0, capacity),
		pos:   make([]int, 0, capacity),
	}
}

// Len returns the number of stored elements.
func (h *Heap) Len() int { return len(h.items) }

// Position returns the slot of id, or NotInHeap.
func (h *Heap) Position(id int) int {
	if id < 0 || id >= len(h.pos) {
		return NotInHeap
	}

	return h.pos[id]
}

// Contains reports whether id is stored.
func (h *Heap) Contains(id int) bool { return h.Position(id) != NotInHeap }

// Key returns the current key of id.
func (h *Heap) Key(id int) (float64, bool) {
	p := h.Position(id)
	if p == NotInHeap {
		return 0, false
	}

	return h.items[p].key, true
}

// Insert adds id with the given key and tie value and sifts it up.
//
// Errors:
//   - ErrBadID, ErrBadKey, ErrDuplicate.
func (h *Heap) Insert(id int, key float64, tie uint64) error {
	if id < 0 {
		return fmt.Errorf("Insert(%d): %w", id, ErrBadID)
	}
	if math.IsNaN(key) {
		return fmt.Errorf("Insert(%d): %w", id, ErrBadKey)
	}
	if h.Contains(id) {
		return fmt.Errorf("Insert(%d): %w", id, ErrDuplicate)
	}
	h.grow(id)

	h.items = append(h.items, entry{id: id, key: key, tie: tie})
	slot := len(h.items) - 1
	h.pos[id] = slot
	h.up(slot)

	return nil
}

// Top returns the root without removing it.
func (h *Heap) Top() (id int, key float64, ok bool) {
	if len(h.items) == 0 {
		return NotInHeap, 0, false
	}

	return h.items[0].id, h.items[0].key, true
}

// ExtractMax removes and returns the root. ok is false on an empty heap,
// which is an ordinary termination signal rather than an error.
func (h *Heap) ExtractMax() (id int, key float64, ok bool) {
	if len(h.items) == 0 {
		return NotInHeap, 0, false
	}
	root := h.items[0]
	h.removeAt(0)

	return root.id, root.key, true
}

// Update changes the key of a stored element and restores heap order.
//
// Errors:
//   - ErrBadKey, ErrNotFound.
func (h *Heap) Update(id int, key float64, tie uint64) error {
	if math.IsNaN(key) {
		return fmt.Errorf("Update(%d): %w", id, ErrBadKey)
	}
	p := h.Position(id)
	if p == NotInHeap {
		return fmt.Errorf("Update(%d): %w", id, ErrNotFound)
	}
	h.items[p].key = key
	h.items[p].tie = tie
	h.fix(p)

	return nil
}

// Upsert inserts id or updates it when already present.
func (h *Heap) Upsert(id int, key float64, tie uint64) error {
	if h.Contains(id) {
		return h.Update(id, key, tie)
	}

	return h.Insert(id, key, tie)
}

// Remove deletes id from the heap. It reports whether id was present.
func (h *Heap) Remove(id int) bool {
	p := h.Position(id)
	if p == NotInHeap {
		return false
	}
	h.removeAt(p)

	return true
}

// Validate checks the heap-order and back-pointer invariants.
func (h *Heap) Validate() error {
	n := len(h.items)
	for i := 0; i < n; i++ {
		e := h.items[i]
		if e.id >= len(h.pos) || h.pos[e.id] != i {
			return fmt.Errorf("slot %d holds id %d with stale position: %w", i, e.id, ErrCorrupt)
		}
		for _, c := range [2]int{2*i + 1, 2*i + 2} {
			if c < n && h.before(c, i) {
				return fmt.Errorf("child %d outranks parent %d: %w", c, i, ErrCorrupt)
			}
		}
	}
	stored := 0
	for id, p := range h.pos {
		if p == NotInHeap {
			continue
		}
		stored++
		if p < 0 || p >= n || h.items[p].id != id {
			return fmt.Errorf("id %d points at slot %d: %w", id, p, ErrCorrupt)
		}
	}
	if stored != n {
		return fmt.Errorf("%d positions for %d slots: %w", stored, n, ErrCorrupt)
	}

	return nil
}

// grow extends pos so that id is addressable.
func (h *Heap) grow(id int) {
	for len(h.pos) <= id {
		h.pos = append(h.pos, NotInHeap)
	}
}

// before reports whether slot i must sit above slot j.
func (h *Heap) before(i, j int) bool {
	a, b := &h.items[i], &h.items[j]
	if a.key != b.key {
		return a.key > b.key
	}

	return a.tie < b.tie
}

func (h *Heap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].id] = i
	h.pos[h.items[j].id] = j
}

// removeAt deletes the element in slot i by moving the last slot into it.
func (h *Heap) removeAt(i int) {
	last := len(h.items) - 1
	h.pos[h.items[i].id] = NotInHeap
	if i != last {
		h.items[i] = h.items[last]
		h.pos[h.items[i].id] = i
	}
	h.items = h.items[:last]
	if i < last {
		h.fix(i)
	}
}

func (h *Heap) fix(i int) {
	if !h.down(i) {
		h.up(i)
	}
}

func (h *Heap) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.before(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down sifts slot i0 toward the leaves; it reports whether the element moved.
func (h *Heap) down(i0 int) bool {
	n := len(h.items)
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.before(j2, j1) {
			j = j2 // right child
		}
		if !h.before(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}

	return i > i0
}
