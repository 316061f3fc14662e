// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package parser defines the Parser capability every log-format adapter
// implements, and a simple ordered Registry used by the detector.
package parser

import "github.com/ptxhq/ptx/internal/event"

// Parser converts raw input lines into typed Events. Implementations must
// never panic or otherwise propagate an exception on malformed input —
// unparseable lines yield (Event{}, false) from Parse.
type Parser interface {
	// FormatName identifies the parser ("http", "syslog", "json", "regex", ...).
	FormatName() string
	// CanParse performs a cheap structural check; it must not panic.
	CanParse(line string) bool
	// Parse converts a single line into an Event tagged with sourceLabel.
	// Returns ok=false when the line cannot be parsed.
	Parse(line string, sourceLabel string) (event.Event, bool)
	// Confidence scores how well this parser fits a sample of lines, in
	// [0,1]. The default implementation (see DefaultConfidence) is the
	// fraction of non-empty sample lines for which CanParse is true.
	Confidence(sample []string) float64
}

// ParseMany runs p.Parse over every line, discarding unparseable ones,
// preserving input order 1:1 over the surviving lines.
func ParseMany(p Parser, lines []string, sourceLabel string) []event.Event {
	out := make([]event.Event, 0, len(lines))
	for _, line := range lines {
		if ev, ok := p.Parse(line, sourceLabel); ok {
			out = append(out, ev)
		}
	}
	return out
}

// DefaultConfidence implements the default confidence rule described in
// spec.md §4.1: the fraction of non-empty sample lines CanParse accepts.
func DefaultConfidence(p Parser, sample []string) float64 {
	var nonEmpty, matched int
	for _, line := range sample {
		if line == "" {
			continue
		}
		nonEmpty++
		if p.CanParse(line) {
			matched++
		}
	}
	if nonEmpty == 0 {
		return 0
	}
	return float64(matched) / float64(nonEmpty)
}

// Registry holds parsers in a fixed, deterministic order — "first match
// wins" for confidence ties, and the order the formats introspection
// command reports them in.
type Registry struct {
	parsers []Parser
}

// NewRegistry builds a Registry from parsers in priority order.
func NewRegistry(parsers ...Parser) *Registry {
	return &Registry{parsers: append([]Parser(nil), parsers...)}
}

// Parsers returns the registered parsers in registration order. The
// returned slice is owned by the caller; Registry keeps its own copy.
func (r *Registry) Parsers() []Parser {
	return append([]Parser(nil), r.parsers...)
}

// ByName returns the parser with the given FormatName, if registered.
func (r *Registry) ByName(name string) (Parser, bool) {
	for _, p := range r.parsers {
		if p.FormatName() == name {
			return p, true
		}
	}
	return nil, false
}
