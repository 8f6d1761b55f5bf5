// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stack

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/qstack/qstacktest"
)

func TestMain(m *testing.M) {
	qstacktest.NoLeak(m)
}

// checkQueues asserts that at most one queue holds elements and, if any, that
// it is the active one.
func checkQueues[T any](tb testing.TB, s *TwoQueue[T]) {
	tb.Helper()
	inactive := &s.queues[1-s.active]
	require.Truef(tb, inactive.IsEmpty(), "inactive queue %d holds %d elements", 1-s.active, inactive.Size())
}

func TestScenario(t *testing.T) {
	s := New[int]()

	_, err := s.Pop()
	require.ErrorIs(t, err, ErrEmpty, "Pop() on new stack")

	pop := func(want int) {
		t.Helper()
		got, err := s.Pop()
		require.NoError(t, err, "Pop()")
		require.Equal(t, want, got, "Pop()")
		checkQueues(t, s)
	}

	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	pop(3)
	pop(2)
	s.Push(4)
	s.Push(5)
	require.False(t, s.IsEmpty(), "IsEmpty()")
	pop(5)
	pop(4)
	pop(1)

	_, err = s.Pop()
	require.ErrorIs(t, err, ErrEmpty, "Pop() after draining")
	require.True(t, s.IsEmpty(), "IsEmpty() after draining")
}

func TestSingleElement(t *testing.T) {
	var s TwoQueue[string]
	s.Push("only")
	require.Equal(t, 1, s.Len())

	got, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, "only", got)
	require.True(t, s.IsEmpty())
	require.Zero(t, s.Len())
}

func TestLIFO(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is useful in tests

	var (
		s    TwoQueue[int]
		ref  []int // reference stack; top at the end
		got  []int
		want []int
	)
	for i := range 2000 {
		if rng.IntN(3) == 0 {
			x, err := s.Pop()
			if len(ref) == 0 {
				require.ErrorIs(t, err, ErrEmpty)
				continue
			}
			require.NoError(t, err)
			got = append(got, x)
			want = append(want, ref[len(ref)-1])
			ref = ref[:len(ref)-1]
		} else {
			s.Push(i)
			ref = append(ref, i)
		}
		require.Equal(t, len(ref), s.Len(), "Len()")
		checkQueues(t, &s)
	}

	got = append(got, qstacktest.Drain(t, &s, s.Pop)...)
	slices.Reverse(ref)
	want = append(want, ref...)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%T.Pop() sequence; diff (-want +got):\n%s", &s, diff)
	}
}

func TestPopAfterDrainIsRepeatable(t *testing.T) {
	s := New[int]()
	s.Push(1)
	_, err := s.Pop()
	require.NoError(t, err)

	for range 3 {
		_, err := s.Pop()
		require.ErrorIs(t, err, ErrEmpty)
		require.True(t, s.IsEmpty())
	}
}
