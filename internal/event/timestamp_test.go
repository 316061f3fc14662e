// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package event

import (
	"testing"
	"time"
)

func TestParseISO8601(t *testing.T) {
	cases := []string{
		"2025-12-04T10:00:00Z",
		"2025-12-04T10:00:00.123456Z",
		"2025-12-04T10:00:00+09:00",
		"2025-12-04 10:00:00",
	}
	for _, c := range cases {
		if _, ok := ParseISO8601(c); !ok {
			t.Errorf("expected %q to parse", c)
		}
	}
}

func TestParseISO8601Rejects(t *testing.T) {
	if _, ok := ParseISO8601("not-a-timestamp"); ok {
		t.Error("garbage input should not parse")
	}
}

func TestNowUnixRespectsOverride(t *testing.T) {
	orig := Now
	defer func() { Now = orig }()

	fixed := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	Now = func() time.Time { return fixed }

	if got := NowUnix(); got != fixed.Unix() {
		t.Errorf("NowUnix() = %d, want %d", got, fixed.Unix())
	}
}
