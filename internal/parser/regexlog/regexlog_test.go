// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package regexlog

import (
	"regexp"
	"testing"
)

func TestParseWithCoercions(t *testing.T) {
	p := New(Config{
		Pattern: regexp.MustCompile(`^(?P<level>\w+) (?P<count>\d+) (?P<flag>true|false)$`),
		Coercions: map[string]Coercion{
			"count": CoerceInt,
			"flag":  CoerceBool,
			"level": CoerceUpper,
		},
	})

	ev, ok := p.Parse("warn 5 true", "src")
	if !ok {
		t.Fatal("expected line to parse")
	}

	level, _ := ev.Get("level")
	if s, _ := level.AsString(); s != "WARN" {
		t.Errorf("level = %q, want WARN", s)
	}
	count, _ := ev.Get("count")
	if n, _ := count.AsInt(); n != 5 {
		t.Errorf("count = %d, want 5", n)
	}
	flag, _ := ev.Get("flag")
	if b, _ := flag.AsBool(); !b {
		t.Error("flag should be true")
	}
}

func TestParseNoMatchFails(t *testing.T) {
	p := New(Config{Pattern: regexp.MustCompile(`^\d+$`)})
	if _, ok := p.Parse("abc", "src"); ok {
		t.Error("expected no match to fail")
	}
}

func TestCoercionFailureYieldsZeroValue(t *testing.T) {
	p := New(Config{
		Pattern:   regexp.MustCompile(`^(?P<n>.+)$`),
		Coercions: map[string]Coercion{"n": CoerceInt},
	})
	ev, ok := p.Parse("not-a-number", "src")
	if !ok {
		t.Fatal("expected match")
	}
	v, _ := ev.Get("n")
	if n, _ := v.AsInt(); n != 0 {
		t.Errorf("expected zero value on coercion failure, got %d", n)
	}
}

func TestTimestampFieldResolvesEpoch(t *testing.T) {
	p := New(Config{
		Pattern:        regexp.MustCompile(`^(?P<ts>\d+) (?P<msg>.+)$`),
		TimestampField: "ts",
	})
	ev, ok := p.Parse("1700000000 hello", "src")
	if !ok {
		t.Fatal("expected match")
	}
	if ev.Timestamp != 1700000000 {
		t.Errorf("Timestamp = %d, want 1700000000", ev.Timestamp)
	}
}

func TestFormatNameDefaultsToRegex(t *testing.T) {
	p := New(Config{Pattern: regexp.MustCompile(`.*`)})
	if p.FormatName() != "regex" {
		t.Errorf("FormatName() = %q, want regex", p.FormatName())
	}
}
