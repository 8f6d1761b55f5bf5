// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package script parses and runs line-oriented operation scripts against the
// qstack containers.
//
// Each non-blank line holds a single operation; `#` starts a comment. For
// example:
//
//	push 1 2 3
//	pop  # 3
//	empty
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// A Verb names an operation.
type Verb string

// Verbs accepted by [Parse]. Not every [Target] supports every verb.
const (
	Push  Verb = "push"
	Pop   Verb = "pop"
	Add   Verb = "add"
	Next  Verb = "next"
	Drain Verb = "drain"
	Peek  Verb = "peek"
	Empty Verb = "empty"
	Len   Verb = "len"
)

// arity is the number of values each verb accepts; -1 means one or more.
var arity = map[Verb]int{
	Push:  -1,
	Pop:   0,
	Add:   -1,
	Next:  0,
	Drain: 0,
	Peek:  0,
	Empty: 0,
	Len:   0,
}

var (
	// ErrSyntax is returned by [Parse] for malformed lines.
	ErrSyntax = errors.New("syntax error")
	// ErrUnknownOp is returned by [Parse] for unrecognised verbs.
	ErrUnknownOp = errors.New("unknown operation")
)

// maxLineBytes bounds the length of a single script line.
const maxLineBytes = 16 << 20

// An Op is a single parsed operation.
type Op struct {
	Line int // 1-based
	Verb Verb
	Args []int64
}

func (o Op) String() string {
	var b strings.Builder
	b.WriteString(string(o.Verb))
	for _, a := range o.Args {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(a, 10))
	}
	return b.String()
}

// Parse reads operations from `r`, one per line. Errors are annotated with the
// line number.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLineBytes)

	line := 1
	for ; sc.Scan(); line++ {
		op, ok, err := parseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !ok {
			continue
		}
		op.Line = line
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}
	return ops, nil
}

// parseLine returns false if the line holds no operation.
func parseLine(s string) (Op, bool, error) {
	// shlex treats `#` as a comment but only at the start of a word, so
	// "push 1#2" would otherwise be a syntax error instead of "push 1".
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	words, err := shlex.Split(s)
	if err != nil {
		return Op{}, false, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if len(words) == 0 {
		return Op{}, false, nil
	}

	v := Verb(strings.ToLower(words[0]))
	n, ok := arity[v]
	if !ok {
		return Op{}, false, fmt.Errorf("%w %q", ErrUnknownOp, words[0])
	}

	args := words[1:]
	switch {
	case n == -1 && len(args) == 0:
		return Op{}, false, fmt.Errorf("%w: %s requires at least one value", ErrSyntax, v)
	case n >= 0 && len(args) != n:
		return Op{}, false, fmt.Errorf("%w: %s takes %d values; got %d", ErrSyntax, v, n, len(args))
	}

	op := Op{Verb: v}
	for _, a := range args {
		x, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return Op{}, false, fmt.Errorf("%w: %s value %q: %v", ErrSyntax, v, a, err)
		}
		op.Args = append(op.Args, x)
	}
	return op, true, nil
}
