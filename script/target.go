// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package script

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ava-labs/qstack/heap"
	"github.com/ava-labs/qstack/stack"
)

// ErrUnsupported is returned when a [Target] can't perform a [Verb].
var ErrUnsupported = errors.New("operation not supported")

// A Status describes what a [Result] carries.
type Status int

// Result statuses.
const (
	// StatusValue results carry [Result.Value].
	StatusValue Status = iota
	// StatusBool results carry [Result.Bool].
	StatusBool
	// StatusUnderflow results are from removing from an empty stack.
	StatusUnderflow
	// StatusNone results are from an exhausted heap.
	StatusNone
)

// A Result is a single line of output from running an [Op].
type Result struct {
	Line   int
	Verb   Verb
	Status Status
	Value  int64
	Bool   bool
}

// underflow reports whether the result is from a removal that found nothing.
func (r Result) underflow() bool {
	switch r.Status {
	case StatusUnderflow, StatusNone:
		return r.Verb != Peek
	}
	return false
}

func (r Result) String() string {
	switch r.Status {
	case StatusValue:
		return strconv.FormatInt(r.Value, 10)
	case StatusBool:
		return strconv.FormatBool(r.Bool)
	case StatusUnderflow:
		return "empty"
	case StatusNone:
		return "none"
	default:
		return fmt.Sprintf("Status(%d)", int(r.Status))
	}
}

// A Target is a container that [Runner] operates on.
type Target interface {
	// Name identifies the target in logs and metrics.
	Name() string
	// Apply performs `op`, returning zero or more results. Underflow and
	// exhaustion are results, not errors.
	Apply(op Op) ([]Result, error)
}

func value(op Op, x int64) Result {
	return Result{Line: op.Line, Verb: op.Verb, Status: StatusValue, Value: x}
}

func boolean(op Op, b bool) Result {
	return Result{Line: op.Line, Verb: op.Verb, Status: StatusBool, Bool: b}
}

type stackTarget struct {
	s *stack.TwoQueue[int64]
}

// NewStackTarget returns a [Target] backed by an empty [stack.TwoQueue]. It
// supports [Push], [Pop], [Empty] and [Len].
func NewStackTarget() Target {
	return &stackTarget{s: stack.New[int64]()}
}

func (*stackTarget) Name() string { return "stack" }

func (t *stackTarget) Apply(op Op) ([]Result, error) {
	switch op.Verb {
	case Push:
		for _, x := range op.Args {
			t.s.Push(x)
		}
		return nil, nil

	case Pop:
		x, err := t.s.Pop()
		if errors.Is(err, stack.ErrEmpty) {
			return []Result{{Line: op.Line, Verb: op.Verb, Status: StatusUnderflow}}, nil
		}
		if err != nil {
			return nil, err
		}
		return []Result{value(op, x)}, nil

	case Empty:
		return []Result{boolean(op, t.s.IsEmpty())}, nil
	case Len:
		return []Result{value(op, int64(t.s.Len()))}, nil
	}
	return nil, fmt.Errorf("%w: %s on %s", ErrUnsupported, op.Verb, t.Name())
}

// An Order selects the predicate of a heap [Target].
type Order string

// Supported orders.
const (
	Min Order = "min"
	Max Order = "max"
)

// ParseOrder returns the [Order] named by `s`.
func ParseOrder(s string) (Order, error) {
	switch o := Order(s); o {
	case Min, Max:
		return o, nil
	}
	return "", fmt.Errorf("unknown heap order %q; want %q or %q", s, Min, Max)
}

type heapTarget struct {
	order Order
	h     *heap.Heap[int64]
}

// NewHeapTarget returns a [Target] backed by an empty [heap.Heap] of the
// specified [Order]. It supports [Add], [Next], [Drain], [Peek], [Empty] and
// [Len].
func NewHeapTarget(o Order) (Target, error) {
	t := &heapTarget{order: o}
	switch o {
	case Min:
		t.h = heap.NewMin[int64]()
	case Max:
		t.h = heap.NewMax[int64]()
	default:
		return nil, fmt.Errorf("unknown heap order %q", o)
	}
	return t, nil
}

func (t *heapTarget) Name() string { return string(t.order) + "heap" }

func (t *heapTarget) Apply(op Op) ([]Result, error) {
	switch op.Verb {
	case Add:
		for _, x := range op.Args {
			t.h.Add(x)
		}
		return nil, nil

	case Next, Peek:
		next := t.h.Next
		if op.Verb == Peek {
			next = t.h.Peek
		}
		x, ok := next()
		if !ok {
			return []Result{{Line: op.Line, Verb: op.Verb, Status: StatusNone}}, nil
		}
		return []Result{value(op, x)}, nil

	case Drain:
		var out []Result
		for x := range t.h.All() {
			out = append(out, value(op, x))
		}
		return out, nil

	case Empty:
		return []Result{boolean(op, t.h.IsEmpty())}, nil
	case Len:
		return []Result{value(op, int64(t.h.Len()))}, nil
	}
	return nil, fmt.Errorf("%w: %s on %s", ErrUnsupported, op.Verb, t.Name())
}
