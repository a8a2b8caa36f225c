// Package indexheap implements an array-backed binary min-heap over dense
// vertex indices with O(log n) decrease-key.
//
// The heap stores one (vertex, key) entry per vertex in a flat slice and keeps
// a parallel position array mapping each vertex to its current slot, so any
// vertex can be located in O(1) and re-prioritised in O(log n). It is the
// selection primitive shared by Dijkstra and heap-based Prim.
//
// Invariants (hold after every exported call):
//
//  1. key[parent(i)] ≤ key[i] for every slot 1 ≤ i < Len().
//  2. pos[items[i].vertex] == i for every slot 0 ≤ i < Cap().
//  3. A vertex is in-heap iff pos[vertex] < Len(); it appears exactly once.
//
// Extraction never shrinks the backing slice: the root is swapped into the
// last live slot and the live size is decremented, so extracted entries
// accumulate past Len() and their positions stay valid (≥ Len()).
//
// Ties: sift-down swaps only when a child is strictly smaller than its
// parent; equal keys never move. No further stability is guaranteed.
package indexheap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for heap operations.
var (
	// ErrNotInHeap indicates DecreaseKey on a vertex that was already
	// extracted or is outside [0, Cap()).
	ErrNotInHeap = errors.New("indexheap: vertex not in heap")

	// ErrKeyIncrease indicates DecreaseKey with a key greater than the
	// vertex's current key. The heap is left unchanged; callers must never
	// issue such a call.
	ErrKeyIncrease = errors.New("indexheap: new key is greater than current key")
)

// item is one heap slot.
type item[K constraints.Ordered] struct {
	vertex int
	key    K
}

// Heap is an indexed binary min-heap over vertices 0..n-1.
// The zero value is an empty heap with capacity 0; use Build.
type Heap[K constraints.Ordered] struct {
	items []item[K] // slots; [0, size) live, [size, n) extracted
	pos   []int     // vertex → slot
	size  int       // live entries
}

// Build creates a heap containing every vertex i in 0..len(keys)-1 with key
// keys[i]. Positions start as identity and a bottom-up heapify restores
// heap order.
//
// Complexity: O(n) time, O(n) memory.
func Build[K constraints.Ordered](keys []K) *Heap[K] {
	n := len(keys)
	h := &Heap[K]{
		items: make([]item[K], n),
		pos:   make([]int, n),
		size:  n,
	}
	for v := 0; v < n; v++ {
		h.items[v] = item[K]{vertex: v, key: keys[v]}
		h.pos[v] = v
	}
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i)
	}

	return h
}

// Len returns the number of vertices still in the heap.
func (h *Heap[K]) Len() int { return h.size }

// Cap returns the number of vertices the heap was built over.
func (h *Heap[K]) Cap() int { return len(h.items) }

// Contains reports whether v is still in the heap.
//
// Complexity: O(1).
func (h *Heap[K]) Contains(v int) bool {
	return v >= 0 && v < len(h.pos) && h.pos[v] < h.size
}

// Key returns v's current key and whether v is still in the heap.
func (h *Heap[K]) Key(v int) (K, bool) {
	if !h.Contains(v) {
		var zero K
		return zero, false
	}

	return h.items[h.pos[v]].key, true
}

// Peek returns the minimum entry without removing it.
// ok is false when the heap is empty.
func (h *Heap[K]) Peek() (vertex int, key K, ok bool) {
	if h.size == 0 {
		return -1, key, false
	}

	return h.items[0].vertex, h.items[0].key, true
}

// ExtractMin removes and returns the minimum-key entry. The last live entry
// moves to the root and sifts down. ok is false when the heap is empty.
//
// Complexity: O(log n).
func (h *Heap[K]) ExtractMin() (vertex int, key K, ok bool) {
	if h.size == 0 {
		return -1, key, false
	}

	root := h.items[0]
	last := h.size - 1
	h.swap(0, last)
	h.size--
	h.down(0)

	return root.vertex, root.key, true
}

// DecreaseKey lowers v's key to key and sifts it upward, updating the
// position of both vertices at every swap.
//
// Returns ErrNotInHeap if v is not in the heap and ErrKeyIncrease if key is
// greater than the current key; the heap is untouched in both cases.
// An equal key is accepted and is a no-op.
//
// Complexity: O(log n).
func (h *Heap[K]) DecreaseKey(v int, key K) error {
	if !h.Contains(v) {
		return fmt.Errorf("%w: vertex %d", ErrNotInHeap, v)
	}
	i := h.pos[v]
	if key > h.items[i].key {
		return fmt.Errorf("%w: vertex %d", ErrKeyIncrease, v)
	}
	h.items[i].key = key
	h.up(i)

	return nil
}

// swap exchanges slots i and j and records the new positions.
func (h *Heap[K]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].vertex] = i
	h.pos[h.items[j].vertex] = j
}

// up moves the entry at slot i toward the root while it is strictly
// smaller than its parent.
func (h *Heap[K]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !(h.items[i].key < h.items[parent].key) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the entry at slot i toward the leaves while a child is
// strictly smaller.
func (h *Heap[K]) down(i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := left + 1
		if left < h.size && h.items[left].key < h.items[smallest].key {
			smallest = left
		}
		if right < h.size && h.items[right].key < h.items[smallest].key {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
