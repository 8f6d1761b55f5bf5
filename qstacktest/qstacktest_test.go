// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package qstacktest

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	NoLeak(m)
}

func TestLogRecorder(t *testing.T) {
	rec := NewTBLogRecorder(t, logging.Debug)
	rec.Verbo("dropped")
	rec.Debug("kept", zap.Int("n", 1))

	child := rec.With(zap.String("scope", "child"))
	child.Info("from child", zap.Int("n", 2))

	require.Len(t, *rec.Records, 2, "Verbo below Debug is dropped; child shares records")
	require.Empty(t, rec.WithMsg("dropped"))

	got := rec.At(logging.Info)
	require.Len(t, got, 1)
	require.Equal(t, map[string]any{"scope": "child", "n": int64(2)}, got[0].FieldMap())
}

type slice struct{ xs []int }

func (s *slice) IsEmpty() bool { return len(s.xs) == 0 }

func TestDrain(t *testing.T) {
	s := &slice{xs: []int{3, 1, 2}}
	got := Drain(t, s, func() (int, error) {
		if len(s.xs) == 0 {
			return 0, errors.New("underflow")
		}
		x := s.xs[0]
		s.xs = s.xs[1:]
		return x, nil
	})
	require.Equal(t, []int{3, 1, 2}, got)
	require.True(t, s.IsEmpty())
}
