// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package syslog parses RFC5424 and BSD (RFC3164) syslog lines into
// events, per spec.md §4.4.
package syslog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ptxhq/ptx/internal/event"
)

// priPattern matches the leading "<PRI>" on any syslog line.
var priPattern = regexp.MustCompile(`^<(\d{1,3})>`)

// rfc5424Pattern matches the whole of an RFC5424 line, after PRI removal:
// VERSION TIMESTAMP HOSTNAME APPNAME PROCID MSGID SD MSG
var rfc5424Pattern = regexp.MustCompile(
	`^(?P<version>\d+) (?P<timestamp>\S+) (?P<hostname>\S+) (?P<appname>\S+) ` +
		`(?P<procid>\S+) (?P<msgid>\S+) (?P<sd>-|\[.*?\])(?: (?P<message>.*))?$`,
)

// bsdPattern matches classic BSD syslog (RFC3164): "Mon  2 15:04:05 host
// program[pid]: message" — the program/pid section is optional.
var bsdPattern = regexp.MustCompile(
	`^(?P<month>[A-Z][a-z]{2}) +(?P<day>\d{1,2}) (?P<time>\d{2}:\d{2}:\d{2}) ` +
		`(?P<host>\S+) (?P<program>[^:\[]+)(?:\[(?P<pid>\d+)\])?: (?P<message>.*)$`,
)

// Parser parses both RFC5424 and BSD (RFC3164) syslog lines.
type Parser struct{}

// New returns a syslog Parser.
func New() *Parser { return &Parser{} }

// FormatName identifies this parser.
func (p *Parser) FormatName() string { return "syslog" }

// CanParse reports whether line matches the RFC5424 or BSD shape (after
// stripping an optional leading PRI).
func (p *Parser) CanParse(line string) bool {
	body := stripPRI(line)
	return rfc5424Pattern.MatchString(body) || bsdPattern.MatchString(body)
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

func stripPRI(line string) string {
	if m := priPattern.FindStringSubmatchIndex(line); m != nil {
		return line[m[1]:]
	}
	return line
}

func parsePRI(line string) (pri int, ok bool) {
	m := priPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 || n > 191 {
		return 0, false
	}
	return n, true
}

// Parse dispatches to the RFC5424 or BSD shape.
func (p *Parser) Parse(line string, sourceLabel string) (event.Event, bool) {
	body := stripPRI(line)

	if m := rfc5424Pattern.FindStringSubmatch(body); m != nil {
		return parseRFC5424(line, body, rfc5424Pattern, m, sourceLabel), true
	}
	if m := bsdPattern.FindStringSubmatch(body); m != nil {
		return parseBSD(line, body, bsdPattern, m, sourceLabel), true
	}
	return event.Event{}, false
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

func namedGroups(re *regexp.Regexp, m []string) map[string]string {
	out := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		out[name] = m[i]
	}
	return out
}

func parseRFC5424(rawLine, body string, re *regexp.Regexp, m []string, sourceLabel string) event.Event {
	g := namedGroups(re, m)

	ts := event.NowUnix()
	if t, ok := event.ParseISO8601(g["timestamp"]); ok {
		ts = t.Unix()
	}

	ev := event.New(sourceLabel, ts)
	ev.Raw = rawLine
	ev.Set("format", event.String("rfc5424"))

	if pri, ok := parsePRI(rawLine); ok {
		facility, severity := Decompose(pri)
		ev.Set("priority", event.Int(int64(pri)))
		ev.Set("facility", event.String(FacilityName(facility)))
		ev.Set("severity", event.String(SeverityName(severity)))
	}

	ev.Set("hostname", event.String(dash(g["hostname"])))
	ev.Set("appname", event.String(dash(g["appname"])))
	ev.Set("procid", event.String(dash(g["procid"])))
	ev.Set("msgid", event.String(dash(g["msgid"])))

	if sd := g["sd"]; sd != "-" && sd != "" {
		ev.Set("sd", event.String(sd))
	}

	ev.Set("message", event.String(g["message"]))

	return ev
}

func parseBSD(rawLine, body string, re *regexp.Regexp, m []string, sourceLabel string) event.Event {
	g := namedGroups(re, m)

	ts := event.NowUnix()
	// BSD syslog carries no year; spec.md §4.4 accepts "current year" as a
	// known limitation (see SPEC_FULL.md §9's open-question resolutions).
	if t, err := parseBSDTime(g["month"], g["day"], g["time"]); err == nil {
		ts = t
	}

	ev := event.New(sourceLabel, ts)
	ev.Raw = rawLine
	ev.Set("format", event.String("bsd"))

	if pri, ok := parsePRI(rawLine); ok {
		facility, severity := Decompose(pri)
		ev.Set("priority", event.Int(int64(pri)))
		ev.Set("facility", event.String(FacilityName(facility)))
		ev.Set("severity", event.String(SeverityName(severity)))
	}

	ev.Set("hostname", event.String(g["host"]))
	ev.Set("program", event.String(strings.TrimSpace(g["program"])))
	if pid := g["pid"]; pid != "" {
		ev.Set("pid", event.String(pid))
	}
	ev.Set("message", event.String(g["message"]))

	return ev
}

func dash(s string) string {
	if s == "-" {
		return ""
	}
	return s
}
