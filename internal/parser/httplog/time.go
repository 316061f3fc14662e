// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package httplog

import "time"

// timeParse parses raw with layout and returns unix seconds, respecting
// whatever timezone layout carries (per spec.md §4.3: "respecting
// timezone; on failure, fall back to now").
func timeParse(layout, raw string) (int64, error) {
	t, err := time.Parse(layout, raw)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}
