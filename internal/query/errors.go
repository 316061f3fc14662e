// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package query

import "fmt"

// QuerySyntaxError reports a parse failure at a specific character (rune)
// offset into
// the original query string, per spec.md §4.7 ("returns a structured
// error naming the failing token position").
type QuerySyntaxError struct {
	Pos int
	Msg string
}

func (e *QuerySyntaxError) Error() string {
	return fmt.Sprintf("query syntax error at position %d: %s", e.Pos, e.Msg)
}
