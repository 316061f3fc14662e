// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package transform implements the ordered per-event transform chain
// described in spec.md §4.9, plus the restricted --eval expression
// language spec.md §9 mandates in place of the source's embedded
// dynamic-language evaluator.
package transform

import (
	"log/slog"

	"github.com/ptxhq/ptx/internal/event"
)

// Transform maps a single Event to a possibly-different Event, or drops
// it by returning keep=false. A non-nil error means the transform
// failed on this event; the chain logs it and passes the original event
// through unchanged, per spec.md §4.9's fault-tolerance policy.
type Transform interface {
	Apply(ev event.Event) (out event.Event, keep bool, err error)
}

// Func adapts a plain function to the Transform interface.
type Func func(ev event.Event) (event.Event, bool, error)

// Apply calls f.
func (f Func) Apply(ev event.Event) (event.Event, bool, error) { return f(ev) }

// Chain is an ordered list of transforms applied to every surviving
// event in sequence.
type Chain struct {
	transforms []Transform
	log        *slog.Logger
}

// NewChain builds a Chain. A nil logger falls back to slog.Default.
func NewChain(log *slog.Logger, transforms ...Transform) *Chain {
	if log == nil {
		log = slog.Default()
	}
	return &Chain{transforms: transforms, log: log}
}

// Apply runs every event through every transform in order. A "none"
// result (keep=false) at any stage drops the event from the output; an
// error at any stage is logged and that stage's event is passed through
// unchanged to the next stage, per spec.md §4.9.
func (c *Chain) Apply(events []event.Event) []event.Event {
	out := make([]event.Event, 0, len(events))
	for _, ev := range events {
		cur := ev
		dropped := false
		for _, tr := range c.transforms {
			next, keep, err := tr.Apply(cur)
			if err != nil {
				c.log.Warn("transform fault, passing event through unchanged", "error", err)
				continue
			}
			if !keep {
				dropped = true
				break
			}
			cur = next
		}
		if !dropped {
			out = append(out, cur)
		}
	}
	return out
}
