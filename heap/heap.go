// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package heap provides a binary heap ordered by a caller-supplied predicate.
//
// Unlike [container/heap], the ordering rule is a value fixed at construction
// so the same type serves as both a min-heap and a max-heap, and removal is
// exposed as an iterator that drains the heap in priority order.
package heap

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// A Heap is a binary heap in which no element is better than its parent, as
// defined by the predicate passed to [New]. Elements are stored in a 1-indexed
// implicit tree: `items[0]` is an unused, zero-valued sentinel, the root is at
// 1, and the children of `i` are at `2i` and `2i+1`.
//
// Use [New], [NewMin] or [NewMax] to construct a Heap; the zero value has no
// predicate and panics on [Heap.Add].
type Heap[T any] struct {
	items  []T
	count  int // == len(items)-1
	better func(a, b T) bool
}

const errZeroHeap = "heap: Add on zero-value Heap; use New, NewMin or NewMax"

// New returns an empty heap ordered by `better`, which MUST report whether `a`
// belongs above `b`. It MUST be deterministic and irreflexive; for example
// `a < b` results in a min-heap. New panics if `better` is nil.
func New[T any](better func(a, b T) bool) *Heap[T] {
	if better == nil {
		panic("nil heap predicate")
	}
	return &Heap[T]{
		items:  make([]T, 1),
		better: better,
	}
}

// NewMin returns an empty heap that yields its smallest element first.
func NewMin[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// NewMax returns an empty heap that yields its largest element first.
func NewMax[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a > b })
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return h.count
}

// IsEmpty returns whether the heap has no elements.
func (h *Heap[T]) IsEmpty() bool {
	return h.count == 0
}

// Add inserts `x` into the heap in O(log n) time.
func (h *Heap[T]) Add(x T) {
	if h.better == nil {
		panic(errZeroHeap)
	}
	// Slots freed by [Heap.Next] remain in the backing array's capacity so are
	// reused here before any reallocation.
	h.items = append(h.items, x)
	h.count++
	h.up(h.count)
}

// Peek returns the root of the heap without removing it. The boolean is false
// if the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if h.count == 0 {
		var zero T
		return zero, false
	}
	return h.items[1], true
}

// Next removes and returns the root of the heap, i.e. the element for which
// no other is better. The boolean is false, and the value zero, if the heap is
// empty.
func (h *Heap[T]) Next() (T, bool) {
	var zero T
	if h.count == 0 {
		return zero, false
	}

	root := h.items[1]
	if h.count == 1 {
		h.items[1] = zero
		h.items = h.items[:1]
		h.count = 0
		return root, true
	}

	last := h.count
	h.items[1] = h.items[last]
	h.items[last] = zero
	h.items = h.items[:last]
	h.count--
	h.down(1)
	return root, true
}

// All returns an iterator that repeatedly calls [Heap.Next] until the heap is
// empty or iteration is stopped. Every yielded element has already been
// removed from the heap.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := h.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

func parent(i int) int { return i / 2 }
func left(i int) int   { return 2 * i }
func right(i int) int  { return 2*i + 1 }

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// up moves the element at `i` towards the root until it is no better than its
// parent.
func (h *Heap[T]) up(i int) {
	for i > 1 {
		p := parent(i)
		if !h.better(h.items[i], h.items[p]) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// bestChild returns the index of the better of `i`'s children, which MUST
// include at least a left child.
func (h *Heap[T]) bestChild(i int) int {
	l, r := left(i), right(i)
	if r > h.count || h.better(h.items[l], h.items[r]) {
		return l
	}
	return r
}

// down moves the element at `i` away from the root until neither child is
// better than it.
func (h *Heap[T]) down(i int) {
	for left(i) <= h.count {
		c := h.bestChild(i)
		if !h.better(h.items[c], h.items[i]) {
			return
		}
		h.swap(i, c)
		i = c
	}
}
