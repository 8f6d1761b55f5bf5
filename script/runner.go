// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package script

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

// A Runner applies [Op]s to a [Target].
type Runner struct {
	target  Target
	log     logging.Logger
	metrics *Metrics
}

// NewRunner returns a [Runner] for the target. A nil logger is replaced with
// [logging.NoLog] and nil metrics record nothing.
func NewRunner(t Target, log logging.Logger, m *Metrics) *Runner {
	if log == nil {
		log = logging.NoLog{}
	}
	return &Runner{
		target:  t,
		log:     log,
		metrics: m,
	}
}

// Run applies each op in order and returns all results. It stops at the first
// op that the target fails to apply, returning the results up to that point.
func (r *Runner) Run(ops []Op) ([]Result, error) {
	name := r.target.Name()

	var (
		out        []Result
		underflows int
	)
	for _, op := range ops {
		rs, err := r.target.Apply(op)
		if err != nil {
			r.log.Debug("Applying operation",
				zap.String("target", name),
				zap.Int("line", op.Line),
				zap.Stringer("op", op),
				zap.Error(err),
			)
			return out, fmt.Errorf("line %d: %w", op.Line, err)
		}
		r.metrics.observe(name, op, rs)

		for _, res := range rs {
			switch {
			case res.underflow():
				underflows++
				r.log.Debug("Nothing to remove",
					zap.String("target", name),
					zap.Int("line", op.Line),
					zap.Stringer("op", op),
				)
			case res.Status == StatusValue:
				r.log.Debug("Operation result",
					zap.String("target", name),
					zap.Int("line", op.Line),
					zap.Stringer("op", op),
					zap.Int64("value", res.Value),
				)
			}
		}
		out = append(out, rs...)
	}

	r.log.Info("Script complete",
		zap.String("target", name),
		zap.Int("ops", len(ops)),
		zap.Int("results", len(out)),
		zap.Int("underflows", underflows),
	)
	return out, nil
}
