// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package regexlog implements the user-defined-regex parser described in
// spec.md §4.6: a named-capture regex plus a per-field coercion map.
package regexlog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ptxhq/ptx/internal/event"
)

// Coercion names the per-field type coercion applied after capture.
type Coercion string

// Supported coercions, per spec.md §4.6.
const (
	CoerceInt   Coercion = "int"
	CoerceFloat Coercion = "float"
	CoerceBool  Coercion = "bool"
	CoerceLower Coercion = "lower"
	CoerceUpper Coercion = "upper"
)

// Config describes how to build a user-regex Parser.
type Config struct {
	Pattern         *regexp.Regexp
	TimestampField  string
	TimestampFormat string // Go time layout; empty means ISO8601-probe.
	Coercions       map[string]Coercion
	Name            string // FormatName; defaults to "regex" if empty.
}

// Parser parses lines against a single user-supplied named-capture regex.
type Parser struct {
	cfg Config
}

// New builds a Parser from cfg.
func New(cfg Config) *Parser {
	if cfg.Name == "" {
		cfg.Name = "regex"
	}
	return &Parser{cfg: cfg}
}

// FormatName identifies this parser.
func (p *Parser) FormatName() string { return p.cfg.Name }

// CanParse reports whether the configured regex matches line.
func (p *Parser) CanParse(line string) bool {
	return p.cfg.Pattern.MatchString(line)
}

// Confidence uses the default fraction-of-matching-lines rule.
func (p *Parser) Confidence(sample []string) float64 {
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

// Parse runs the configured regex, copies named captures into fields,
// applies coercion, then resolves a timestamp via the named field (or
// falls back to now). Coercion failures map to the coerced type's zero
// value rather than dropping the field.
func (p *Parser) Parse(line string, sourceLabel string) (event.Event, bool) {
	m := p.cfg.Pattern.FindStringSubmatch(line)
	if m == nil {
		return event.Event{}, false
	}

	ts := event.NowUnix()
	ev := event.New(sourceLabel, ts)
	ev.Raw = line

	names := p.cfg.Pattern.SubexpNames()
	captures := make(map[string]string, len(names))
	for i, name := range names {
		if i == 0 || name == "" {
			continue
		}
		captures[name] = m[i]
		ev.Set(name, coerce(name, m[i], p.cfg.Coercions))
	}

	if p.cfg.TimestampField != "" {
		if raw, ok := captures[p.cfg.TimestampField]; ok {
			if resolved, ok := p.resolveTimestamp(raw); ok {
				ev.Timestamp = resolved
			}
		}
	}

	return ev, true
}

// ParseMany wraps Parse, discarding unparseable lines.
func (p *Parser) ParseMany(lines []string, sourceLabel string) []event.Event {
	out := make([]event.Event, 0, len(lines))
	for _, line := range lines {
		if ev, ok := p.Parse(line, sourceLabel); ok {
			out = append(out, ev)
		}
	}
	return out
}

func (p *Parser) resolveTimestamp(raw string) (int64, bool) {
	if p.cfg.TimestampFormat != "" {
		if t, err := timeParseLayout(p.cfg.TimestampFormat, raw); err == nil {
			return t, true
		}
		return 0, false
	}
	if t, ok := event.ParseISO8601(raw); ok {
		return t.Unix(), true
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, true
	}
	return 0, false
}

// coerce applies the configured type coercion for field name, defaulting
// to a plain string when no coercion is configured. Coercion failures
// yield the target type's zero value per spec.md §4.6.
func coerce(name, raw string, coercions map[string]Coercion) event.Value {
	c, ok := coercions[name]
	if !ok {
		return event.String(raw)
	}
	switch c {
	case CoerceInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return event.Int(0)
		}
		return event.Int(n)
	case CoerceFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return event.Float(0)
		}
		return event.Float(f)
	case CoerceBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return event.Bool(false)
		}
		return event.Bool(b)
	case CoerceLower:
		return event.String(strings.ToLower(raw))
	case CoerceUpper:
		return event.String(strings.ToUpper(raw))
	default:
		return event.String(raw)
	}
}
