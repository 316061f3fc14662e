// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package httplog

import "testing"

func TestParseCombined(t *testing.T) {
	p := New()
	line := `127.0.0.1 - frank [04/Dec/2025:10:00:00 +0000] "GET /index.html HTTP/1.1" 200 1024 "http://ref" "curl/8.0"`
	ev, ok := p.Parse(line, "access.log")
	if !ok {
		t.Fatal("expected combined line to parse")
	}
	if v, _ := ev.Get("status"); true {
		if n, _ := v.AsInt(); n != 200 {
			t.Errorf("status = %d, want 200", n)
		}
	}
	if v, _ := ev.Get("path"); true {
		if s, _ := v.AsString(); s != "/index.html" {
			t.Errorf("path = %q, want /index.html", s)
		}
	}
}

func TestParseCombinedMissingBytes(t *testing.T) {
	p := New()
	line := `10.0.0.1 - - [04/Dec/2025:10:00:00 +0000] "GET / HTTP/1.1" 404 -`
	ev, ok := p.Parse(line, "src")
	if !ok {
		t.Fatal("expected parse")
	}
	v, _ := ev.Get("bytes")
	if n, _ := v.AsInt(); n != 0 {
		t.Errorf("bytes = %d, want 0", n)
	}
}

func TestParseErrorLog(t *testing.T) {
	p := New()
	line := `2025/12/04 10:00:00 [error] 1234#0: *5 client: 10.0.0.2, server: example.com`
	ev, ok := p.Parse(line, "error.log")
	if !ok {
		t.Fatal("expected error line to parse")
	}
	v, _ := ev.Get("level")
	if s, _ := v.AsString(); s != "error" {
		t.Errorf("level = %q, want error", s)
	}
	ip, ok := ev.Get("client_ip")
	if !ok {
		t.Fatal("expected client_ip extracted from message")
	}
	if s, _ := ip.AsString(); s != "10.0.0.2" {
		t.Errorf("client_ip = %q, want 10.0.0.2", s)
	}
}

func TestCanParseRejectsGarbage(t *testing.T) {
	p := New()
	if p.CanParse("this is not a log line") {
		t.Error("expected garbage to be rejected")
	}
}
