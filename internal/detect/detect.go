// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package detect selects the best-fit Parser for a sample of log lines,
// per spec.md §4.2.
package detect

import "github.com/ptxhq/ptx/internal/parser"

// DefaultSampleSize is the number of leading lines sampled for scoring,
// per spec.md §4.2 ("samples the first N (N=10, configurable)").
const DefaultSampleSize = 10

// Detector selects the highest-confidence Parser for a sample of lines.
// It holds no mutable state beyond its registry, so Detect is safe for
// concurrent use.
type Detector struct {
	registry   *parser.Registry
	sampleSize int
}

// New builds a Detector over registry using the default sample size.
func New(registry *parser.Registry) *Detector {
	return &Detector{registry: registry, sampleSize: DefaultSampleSize}
}

// WithSampleSize overrides the default sample size.
func (d *Detector) WithSampleSize(n int) *Detector {
	return &Detector{registry: d.registry, sampleSize: n}
}

// Detect samples the first d.sampleSize lines and returns the
// highest-scoring parser with a score strictly greater than zero. Ties
// are broken by registry (registration) order. Returns (nil, false) when
// every parser scores zero or lines is empty.
func (d *Detector) Detect(lines []string) (parser.Parser, bool) {
	n := d.sampleSize
	if n <= 0 || n > len(lines) {
		n = len(lines)
	}
	sample := lines[:n]

	var best parser.Parser
	var bestScore float64

	for _, p := range d.registry.Parsers() {
		score := p.Confidence(sample)
		if score > bestScore {
			best = p
			bestScore = score
		}
	}

	if best == nil || bestScore <= 0 {
		return nil, false
	}
	return best, true
}
