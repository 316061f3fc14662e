// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package regexlog

import "time"

func timeParseLayout(layout, raw string) (int64, error) {
	t, err := time.Parse(layout, raw)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}
