// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package httplog parses HTTP-server access (combined) and error log
// lines into events, per spec.md §4.3. Both shapes are accepted by the
// same Parser; CanParse succeeds when either regex matches.
package httplog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ptxhq/ptx/internal/event"
)

// combinedPattern matches the Apache/nginx "combined" access log format:
// ip ident user [timestamp] "METHOD path HTTP/x.y" status bytes "referer" "ua"
var combinedPattern = regexp.MustCompile(
	`^(?P<ip>\S+) (?P<ident>\S+) (?P<user>\S+) \[(?P<time>[^\]]+)\] ` +
		`"(?P<method>\S+) (?P<path>\S+) HTTP/[\d.]+" (?P<status>\d{3}) (?P<bytes>\d+|-)` +
		`(?: "(?P<referer>[^"]*)" "(?P<ua>[^"]*)")?\s*$`,
)

// errorPattern matches nginx-style error log lines:
// yyyy/MM/dd HH:MM:SS [level] pid#tid: (*conn )?message
var errorPattern = regexp.MustCompile(
	`^(?P<time>\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}) \[(?P<level>\w+)\] ` +
		`(?P<pid>\d+)#(?P<tid>\d+): (?:\*(?P<conn>\d+) )?(?P<message>.*)$`,
)

// clientIPPattern extracts the client IP nginx embeds in error messages
// like "...client: 10.0.0.1, server: ...".
var clientIPPattern = regexp.MustCompile(`client: ([^,]+),`)

// Parser parses both the combined access-log shape and the error-log
// shape emitted by common HTTP servers (nginx, Apache).
type Parser struct{}

// New returns an httplog Parser.
func New() *Parser { return &Parser{} }

// FormatName identifies this parser to the detector and CLI introspection.
func (p *Parser) FormatName() string { return "http" }

// CanParse reports whether line matches either the combined or the error
// log shape.
func (p *Parser) CanParse(line string) bool {
	return combinedPattern.MatchString(line) || errorPattern.MatchString(line)
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

// Parse dispatches to the access or error shape, returning ok=false if
// neither regex matches.
func (p *Parser) Parse(line string, sourceLabel string) (event.Event, bool) {
	if m := combinedPattern.FindStringSubmatch(line); m != nil {
		return parseCombined(combinedPattern, m, line, sourceLabel), true
	}
	if m := errorPattern.FindStringSubmatch(line); m != nil {
		return parseError(errorPattern, m, line, sourceLabel), true
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

// combinedTimeLayout is the bracketed Apache/nginx access-log timestamp:
// 04/Dec/2025:10:00:00 +0000
const combinedTimeLayout = "02/Jan/2006:15:04:05 -0700"

func parseCombined(re *regexp.Regexp, m []string, line, sourceLabel string) event.Event {
	g := namedGroups(re, m)

	ts := event.NowUnix()
	if parsed, err := parseCombinedTime(g["time"]); err == nil {
		ts = parsed
	}

	ev := event.New(sourceLabel, ts)
	ev.Raw = line
	ev.Set("format", event.String("combined"))
	ev.Set("ip", event.String(g["ip"]))
	ev.Set("ident", event.String(g["ident"]))
	ev.Set("user", event.String(g["user"]))
	ev.Set("method", event.String(g["method"]))
	ev.Set("path", event.String(g["path"]))

	if status, err := strconv.ParseInt(g["status"], 10, 64); err == nil {
		ev.Set("status", event.Int(status))
	}

	bytesStr := g["bytes"]
	if bytesStr == "-" || bytesStr == "" {
		ev.Set("bytes", event.Int(0))
	} else if n, err := strconv.ParseInt(bytesStr, 10, 64); err == nil {
		ev.Set("bytes", event.Int(n))
	}

	referer := g["referer"]
	if referer == "-" {
		referer = ""
	}
	ev.Set("referer", event.String(referer))

	ev.Set("ua", event.String(g["ua"]))

	return ev
}

func parseCombinedTime(raw string) (int64, error) {
	t, err := timeParse(combinedTimeLayout, raw)
	if err != nil {
		return 0, err
	}
	return t, nil
}

func parseError(re *regexp.Regexp, m []string, line, sourceLabel string) event.Event {
	g := namedGroups(re, m)

	ts := event.NowUnix()
	if parsed, err := timeParse("2006/01/02 15:04:05", g["time"]); err == nil {
		ts = parsed
	}

	ev := event.New(sourceLabel, ts)
	ev.Raw = line
	ev.Set("format", event.String("error"))
	ev.Set("level", event.String(g["level"]))
	ev.Set("pid", event.String(g["pid"]))
	ev.Set("tid", event.String(g["tid"]))
	if conn := g["conn"]; conn != "" {
		ev.Set("conn", event.String(conn))
	}
	message := g["message"]
	ev.Set("message", event.String(message))

	if cm := clientIPPattern.FindStringSubmatch(message); cm != nil {
		ev.Set("client_ip", event.String(strings.TrimSpace(cm[1])))
	}

	return ev
}
