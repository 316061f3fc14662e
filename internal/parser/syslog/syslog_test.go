// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package syslog

import "testing"

func TestParseRFC5424(t *testing.T) {
	p := New()
	line := `<34>1 2025-12-04T10:00:00.000Z mymachine su - ID47 - BOM'su root' failed`
	ev, ok := p.Parse(line, "src")
	if !ok {
		t.Fatal("expected RFC5424 line to parse")
	}
	v, _ := ev.Get("hostname")
	if s, _ := v.AsString(); s != "mymachine" {
		t.Errorf("hostname = %q, want mymachine", s)
	}
	f, _ := ev.Get("facility")
	if s, _ := f.AsString(); s != "auth" {
		t.Errorf("facility = %q, want auth", s)
	}
	sev, _ := ev.Get("severity")
	if s, _ := sev.AsString(); s != "crit" {
		t.Errorf("severity = %q, want crit", s)
	}
}

func TestParseBSD(t *testing.T) {
	p := New()
	line := `<13>Dec  4 10:00:00 myhost sshd[1234]: Accepted publickey for user`
	ev, ok := p.Parse(line, "src")
	if !ok {
		t.Fatal("expected BSD line to parse")
	}
	v, _ := ev.Get("program")
	if s, _ := v.AsString(); s != "sshd" {
		t.Errorf("program = %q, want sshd", s)
	}
	pid, _ := ev.Get("pid")
	if s, _ := pid.AsString(); s != "1234" {
		t.Errorf("pid = %q, want 1234", s)
	}
}

func TestParseBSDWithoutPID(t *testing.T) {
	p := New()
	line := `Dec  4 10:00:00 myhost kernel: some message`
	ev, ok := p.Parse(line, "src")
	if !ok {
		t.Fatal("expected BSD line without PRI/pid to parse")
	}
	if _, ok := ev.Get("pid"); ok {
		t.Error("expected no pid field")
	}
}

func TestCanParseRejectsGarbage(t *testing.T) {
	p := New()
	if p.CanParse("just some random text") {
		t.Error("expected garbage to be rejected")
	}
}

func TestDecomposeAndNames(t *testing.T) {
	facility, severity := Decompose(34)
	if facility != 4 || severity != 2 {
		t.Errorf("got facility=%d severity=%d, want 4,2", facility, severity)
	}
	if FacilityName(4) != "auth" {
		t.Errorf("FacilityName(4) = %q, want auth", FacilityName(4))
	}
	if SeverityName(2) != "crit" {
		t.Errorf("SeverityName(2) = %q, want crit", SeverityName(2))
	}
	if FacilityName(999) != "unknown" {
		t.Error("out-of-range facility should be unknown")
	}
}
