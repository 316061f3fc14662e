// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package jsonlog parses one-JSON-object-per-line input into events,
// flattening nested maps into dotted field names, per spec.md §4.5.
package jsonlog

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ptxhq/ptx/internal/event"
)

// timestampFieldCandidates is the fixed, ordered list of field names
// probed for a usable timestamp, per spec.md §4.5.
var timestampFieldCandidates = []string{
	"timestamp", "time", "@timestamp", "ts", "datetime", "date",
	"created_at", "createdAt", "logged_at", "loggedAt",
}

// Parser parses structured (JSON-per-line) input.
type Parser struct{}

// New returns a jsonlog Parser.
func New() *Parser { return &Parser{} }

// FormatName identifies this parser.
func (p *Parser) FormatName() string { return "json" }

// CanParse reports whether line looks like a JSON object and is valid,
// via gjson.Valid rather than a full stdlib decode.
func (p *Parser) CanParse(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "{") && gjson.Valid(trimmed)
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

// Parse decodes line as JSON, flattens nested objects into dotted field
// names, and resolves a timestamp by probing the fixed candidate list.
func (p *Parser) Parse(line string, sourceLabel string) (event.Event, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") || !gjson.Valid(trimmed) {
		return event.Event{}, false
	}

	root := gjson.Parse(trimmed)
	ts := resolveTimestamp(root)

	ev := event.New(sourceLabel, ts)
	ev.Raw = line
	flatten("", root, ev.Fields)

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

// flatten walks a gjson object, writing dotted-path leaves into dst. A
// literal dot in a source key collides with the flattening separator;
// per spec.md §9 this is implementation-defined and here resolves
// last-write-wins (whichever key gjson visits later overwrites the
// earlier one — gjson.ForEach preserves source order, so this is the
// last key in the object's own text, not a random map order).
func flatten(prefix string, result gjson.Result, dst map[string]event.Value) {
	result.ForEach(func(key, value gjson.Result) bool {
		path := key.String()
		if prefix != "" {
			path = prefix + "." + path
		}
		if value.IsObject() {
			flatten(path, value, dst)
		} else {
			dst[path] = toValue(value)
		}
		return true
	})
}

// toValue converts a gjson scalar/array result into an event.Value.
// JSON numbers decode as float64; toValue keeps integral-looking floats
// as float64 rather than guessing int64, since JSON itself carries no
// int/float distinction.
func toValue(v gjson.Result) event.Value {
	switch v.Type {
	case gjson.Null:
		return event.Null
	case gjson.True, gjson.False:
		return event.Bool(v.Bool())
	case gjson.Number:
		return event.Float(v.Num)
	case gjson.String:
		return event.String(v.String())
	case gjson.JSON:
		if v.IsArray() {
			items := v.Array()
			out := make([]event.Value, len(items))
			for i, it := range items {
				out[i] = toValue(it)
			}
			return event.List(out)
		}
		m := make(map[string]event.Value)
		v.ForEach(func(key, value gjson.Result) bool {
			m[key.String()] = toValue(value)
			return true
		})
		return event.Map(m)
	default:
		return event.Null
	}
}

// resolveTimestamp probes timestampFieldCandidates in order: an
// integer-like scalar is used as an epoch, an ISO8601 string is parsed,
// and the first candidate present but unusable still stops the probe
// (falling back to now) rather than trying the next candidate, matching
// "probing a fixed field-name list in order" as a first-match rule.
// Looked up via root.Map() rather than root.Get(name), since several
// candidates (e.g. "@timestamp") contain characters gjson's dot-path
// syntax treats as modifiers.
func resolveTimestamp(root gjson.Result) int64 {
	top := root.Map()
	for _, name := range timestampFieldCandidates {
		v, ok := top[name]
		if !ok {
			continue
		}
		if ts, ok := coerceTimestamp(v); ok {
			return ts
		}
		return event.NowUnix()
	}
	return event.NowUnix()
}

func coerceTimestamp(v gjson.Result) (int64, bool) {
	switch v.Type {
	case gjson.Number:
		return int64(v.Num), true
	case gjson.String:
		s := v.String()
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
		if ts, ok := event.ParseISO8601(s); ok {
			return ts.Unix(), true
		}
		return 0, false
	default:
		return 0, false
	}
}
