// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package qstacktest provides testing helpers for the qstack containers.
package qstacktest

import (
	"testing"

	"go.uber.org/goleak"
)

// NoLeak calls [goleak.VerifyTestMain] with [goleak.IgnoreCurrent]. None of
// the containers start goroutines so any leak is from the code under test.
func NoLeak(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}

// An Emptier reports whether a container holds no elements.
type Emptier interface {
	IsEmpty() bool
}

// Drain repeatedly calls `remove` until `c` is empty, failing the test on the
// first error, and returns all removed values in order.
func Drain[T any](tb testing.TB, c Emptier, remove func() (T, error)) []T {
	tb.Helper()
	var out []T
	for !c.IsEmpty() {
		x, err := remove()
		if err != nil {
			tb.Fatalf("removing from non-empty %T: %v", c, err)
		}
		out = append(out, x)
	}
	return out
}
