// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue provides a generic first-in, first-out queue.
package queue

import "errors"

// ErrEmpty is returned when removing or inspecting the head of an empty queue.
var ErrEmpty = errors.New("queue is empty")

// A FIFO is a first-in, first-out queue. The zero value is an empty queue
// ready for use.
type FIFO[T any] struct {
	r ring[T]
}

// Enqueue appends `x` to the tail of the queue.
func (f *FIFO[T]) Enqueue(x T) {
	f.r.append(x)
}

// Dequeue removes and returns the element at the head of the queue, which is
// the oldest remaining element. It returns [ErrEmpty] if there are no
// elements.
func (f *FIFO[T]) Dequeue() (T, error) {
	if f.r.len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return f.r.popFront(), nil
}

// Peek returns the element at the head of the queue without removing it. It
// returns [ErrEmpty] if there are no elements.
func (f *FIFO[T]) Peek() (T, error) {
	if f.r.len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return f.r.front(), nil
}

// Size returns the number of elements in the queue.
func (f *FIFO[T]) Size() int {
	return f.r.len()
}

// IsEmpty returns whether the queue has no elements.
func (f *FIFO[T]) IsEmpty() bool {
	return f.r.len() == 0
}

// Grow increases the queue's allocated buffer to hold up to `n` elements. This
// does not place a limit on the size of the queue, but pre-allocates memory.
func (f *FIFO[T]) Grow(n int) {
	f.r.grow(n)
}
