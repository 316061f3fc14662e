// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package parser

import (
	"github.com/ptxhq/ptx/internal/parser/httplog"
	"github.com/ptxhq/ptx/internal/parser/jsonlog"
	"github.com/ptxhq/ptx/internal/parser/syslog"
)

// BuiltinRegistry returns a Registry holding the three built-in parsers
// in spec.md §4.2's documented tie-break priority order: HTTP-combined,
// then structured-object (JSON), then syslog. User-defined regex parsers
// are not built in — callers append them with AppendUserParsers.
func BuiltinRegistry() *Registry {
	return NewRegistry(
		httplog.New(),
		jsonlog.New(),
		syslog.New(),
	)
}

// AppendUserParsers returns a new Registry with the built-ins followed by
// the given user-defined parsers, preserving spec.md §4.2's "HTTP
// combined, then structured-object, then syslog, then user-regex" order.
func AppendUserParsers(base *Registry, userParsers ...Parser) *Registry {
	all := append(base.Parsers(), userParsers...)
	return NewRegistry(all...)
}
