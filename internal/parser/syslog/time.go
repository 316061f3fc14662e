// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package syslog

import (
	"fmt"
	"time"

	"github.com/ptxhq/ptx/internal/event"
)

// parseBSDTime reconstructs a timestamp from BSD syslog's year-less
// "Mon day HH:MM:SS" fields, assuming the current year (spec.md §4.4's
// documented limitation: this is wrong across a year boundary).
func parseBSDTime(month, day, clock string) (int64, error) {
	now := event.Now()
	layout := "2006 Jan 2 15:04:05"
	raw := fmt.Sprintf("%d %s %s %s", now.Year(), month, day, clock)
	t, err := time.Parse(layout, raw)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}
