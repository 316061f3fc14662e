// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package jsonlog

import "testing"

func TestCanParse(t *testing.T) {
	p := New()
	if !p.CanParse(`{"a":1}`) {
		t.Error("expected valid JSON object to parse")
	}
	if p.CanParse("not json") {
		t.Error("expected non-JSON to be rejected")
	}
	if p.CanParse("[1,2,3]") {
		t.Error("a JSON array is not an object; should be rejected")
	}
}

func TestParseFlattensNestedObjects(t *testing.T) {
	p := New()
	ev, ok := p.Parse(`{"a":{"b":1,"c":"x"}}`, "src")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	v, ok := ev.Get("a.b")
	if !ok {
		t.Fatal("expected flattened field a.b")
	}
	if f, _ := v.AsFloat(); f != 1 {
		t.Errorf("got %v, want 1", f)
	}
	v2, _ := ev.Get("a.c")
	if s, _ := v2.AsString(); s != "x" {
		t.Errorf("got %q, want x", s)
	}
}

func TestParseResolvesTimestampField(t *testing.T) {
	p := New()
	ev, ok := p.Parse(`{"timestamp":"2025-12-04T10:00:00Z","msg":"hi"}`, "src")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if ev.Timestamp == 0 {
		t.Error("expected resolved timestamp")
	}
}

func TestParseResolvesAtTimestampField(t *testing.T) {
	p := New()
	ev, ok := p.Parse(`{"@timestamp":"2025-12-04T10:00:00Z","msg":"hi"}`, "src")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if ev.Timestamp == 0 {
		t.Error("expected @timestamp to resolve despite its leading @")
	}
}

func TestParseFallsBackToNowWithoutTimestampField(t *testing.T) {
	p := New()
	ev, ok := p.Parse(`{"msg":"hi"}`, "src")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if ev.Timestamp == 0 {
		t.Error("expected a fallback timestamp")
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	p := New()
	if _, ok := p.Parse(`{"a":`, "src"); ok {
		t.Error("expected malformed JSON to fail")
	}
}
