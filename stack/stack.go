// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stack provides a last-in, first-out stack built only from
// first-in, first-out queues.
package stack

import (
	"errors"

	"github.com/ava-labs/qstack/queue"
)

// ErrEmpty is returned when popping from an empty stack.
var ErrEmpty = errors.New("stack is empty")

// A TwoQueue is a LIFO stack emulated with two [queue.FIFO]s. At most one of
// the queues holds elements at any time and, when the stack isn't empty, it
// is always the active one. The zero value is an empty stack ready for use.
//
// Pushing is amortised O(1) while popping is O(n) as all but the most
// recently pushed element are rotated into the inactive queue.
type TwoQueue[T any] struct {
	queues [2]queue.FIFO[T]
	active int // 0 or 1
}

// New returns an empty stack.
func New[T any]() *TwoQueue[T] {
	return new(TwoQueue[T])
}

// Push places `x` on the top of the stack.
func (s *TwoQueue[T]) Push(x T) {
	s.queues[s.active].Enqueue(x)
}

// Pop removes and returns the element at the top of the stack, which is the
// most recently pushed one that hasn't been popped. It returns [ErrEmpty] if
// there are no elements.
func (s *TwoQueue[T]) Pop() (T, error) {
	from := &s.queues[s.active]
	if from.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	to := &s.queues[1-s.active]

	for from.Size() > 1 {
		to.Enqueue(mustDequeue(from))
	}
	top := mustDequeue(from)
	s.active = 1 - s.active
	return top, nil
}

// mustDequeue is only called on a non-empty queue so an error is a broken
// invariant.
func mustDequeue[T any](q *queue.FIFO[T]) T {
	x, err := q.Dequeue()
	if err != nil {
		panic(err)
	}
	return x
}

// IsEmpty returns whether both internal queues are empty.
func (s *TwoQueue[T]) IsEmpty() bool {
	return s.queues[0].IsEmpty() && s.queues[1].IsEmpty()
}

// Len returns the number of elements on the stack.
func (s *TwoQueue[T]) Len() int {
	return s.queues[0].Size() + s.queues[1].Size()
}
