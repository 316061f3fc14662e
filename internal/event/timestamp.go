// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package event

import "time"

// Now returns the current time as a var so tests can override it; parsers
// call this instead of time.Now() directly whenever a line carries no
// usable timestamp, per spec.md's "defaults to now at parse time" rule.
var Now = func() time.Time { return time.Now() }

// NowUnix returns Now() truncated to whole seconds since epoch.
func NowUnix() int64 { return Now().Unix() }

// iso8601Layouts are tried in order by ParseISO8601; the set covers the
// timestamp shapes the structured-object and RFC5424 syslog parsers need
// to accept (with and without fractional seconds, with Z or a numeric
// offset).
var iso8601Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseISO8601 attempts each known ISO8601-ish layout in turn, returning
// the first one that parses.
func ParseISO8601(s string) (time.Time, bool) {
	for _, layout := range iso8601Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
