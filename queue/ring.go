// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

// A ring is a slice-backed circular buffer with constant-time removal from the
// front and amortised constant-time appending to the back.
type ring[T any] struct {
	buf   []T // len(buf) MUST == cap(buf)
	start int // 0 <= start < len(buf), or 0 if len(buf) == 0
	n     int // 0 <= n <= len(buf)
}

func (r *ring[T]) cap() int {
	return len(r.buf)
}

func (r *ring[T]) len() int {
	return r.n
}

func (r *ring[T]) index(i int) int {
	return (r.start + i) % r.cap()
}

// append appends `x` to the back of the ring. If the ring is full, its
// capacity is doubled, or set to 1 if there is no current capacity.
func (r *ring[T]) append(x T) {
	if r.n == r.cap() {
		r.grow(max(2*r.cap(), 1))
	}
	r.buf[r.index(r.n)] = x
	r.n++
}

// front returns the first element without removing it. It panics if the ring
// is empty.
func (r *ring[T]) front() T {
	if r.n == 0 {
		panic("peek into empty ring")
	}
	return r.buf[r.start]
}

// popFront removes and returns the first element. It panics if the ring is
// empty. The vacated slot is zeroed so the ring doesn't pin the value.
func (r *ring[T]) popFront() T {
	x := r.front()

	var zero T
	r.buf[r.start] = zero
	r.start = (r.start + 1) % r.cap()
	r.n--
	return x
}

// grow increases the ring's capacity to n, if necessary. It is O(r.cap()).
func (r *ring[T]) grow(n int) {
	if n <= r.cap() {
		return
	}
	b := make([]T, n)
	k := copy(b, r.buf[r.start:])
	copy(b[k:], r.buf[:r.start])

	r.buf = b
	r.start = 0
}
