// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package qstacktest

import (
	"slices"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// A LogRecorder is a [logging.Logger] that stores every entry at or above its
// level for later inspection. If constructed with [NewTBLogRecorder], entries
// are also forwarded to [testing.TB.Logf].
type LogRecorder struct {
	// Unimplemented methods panic, which is preferable to silently dropping
	// entries as [logging.NoLog] would.
	logging.Logger

	level   logging.Level
	tb      testing.TB
	with    []zap.Field
	Records *[]*LogRecord
}

var _ logging.Logger = (*LogRecorder)(nil)

// A LogRecord is a single entry in a [LogRecorder].
type LogRecord struct {
	Level  logging.Level
	Msg    string
	Fields []zap.Field
}

// FieldMap returns the record's fields encoded as a map, keyed by field name.
func (r *LogRecord) FieldMap() map[string]any {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range r.Fields {
		f.AddTo(enc)
	}
	return enc.Fields
}

// NewLogRecorder constructs a new [LogRecorder] at the specified level.
func NewLogRecorder(level logging.Level) *LogRecorder {
	return &LogRecorder{
		level:   level,
		Records: new([]*LogRecord),
	}
}

// NewTBLogRecorder is equivalent to [NewLogRecorder] except that entries are
// additionally logged to `tb`.
func NewTBLogRecorder(tb testing.TB, level logging.Level) *LogRecorder {
	l := NewLogRecorder(level)
	l.tb = tb
	return l
}

// With returns a child logger that shares the parent's records.
func (l *LogRecorder) With(fields ...zap.Field) logging.Logger {
	return &LogRecorder{
		level:   l.level,
		tb:      l.tb,
		with:    slices.Concat(l.with, fields),
		Records: l.Records,
	}
}

func (l *LogRecorder) log(lvl logging.Level, msg string, fields ...zap.Field) {
	if lvl < l.level {
		return
	}
	r := &LogRecord{
		Level:  lvl,
		Msg:    msg,
		Fields: slices.Concat(l.with, fields),
	}
	*l.Records = append(*l.Records, r)
	if l.tb != nil {
		l.tb.Logf("[Log@%s] %s %v", lvl, msg, r.FieldMap())
	}
}

func (l *LogRecorder) Verbo(msg string, fs ...zap.Field) { l.log(logging.Verbo, msg, fs...) }
func (l *LogRecorder) Debug(msg string, fs ...zap.Field) { l.log(logging.Debug, msg, fs...) }
func (l *LogRecorder) Trace(msg string, fs ...zap.Field) { l.log(logging.Trace, msg, fs...) }
func (l *LogRecorder) Info(msg string, fs ...zap.Field)  { l.log(logging.Info, msg, fs...) }
func (l *LogRecorder) Warn(msg string, fs ...zap.Field)  { l.log(logging.Warn, msg, fs...) }
func (l *LogRecorder) Error(msg string, fs ...zap.Field) { l.log(logging.Error, msg, fs...) }
func (l *LogRecorder) Fatal(msg string, fs ...zap.Field) { l.log(logging.Fatal, msg, fs...) }

// Filter returns the recorded logs for which `fn` returns true.
func (l *LogRecorder) Filter(fn func(*LogRecord) bool) []*LogRecord {
	var out []*LogRecord
	for _, r := range *l.Records {
		if fn(r) {
			out = append(out, r)
		}
	}
	return out
}

// At returns all recorded logs at the specified [logging.Level].
func (l *LogRecorder) At(lvl logging.Level) []*LogRecord {
	return l.Filter(func(r *LogRecord) bool { return r.Level == lvl })
}

// WithMsg returns all recorded logs with exactly the specified message.
func (l *LogRecorder) WithMsg(msg string) []*LogRecord {
	return l.Filter(func(r *LogRecord) bool { return r.Msg == msg })
}
