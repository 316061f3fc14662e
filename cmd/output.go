// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"os"

	"github.com/ptxhq/ptx/internal/cliutil"
	"github.com/ptxhq/ptx/internal/config"
	"github.com/ptxhq/ptx/internal/errors"
	"github.com/ptxhq/ptx/internal/event"
	"github.com/ptxhq/ptx/internal/exec"
	"github.com/ptxhq/ptx/internal/query"
)

// filterByTimeWindow drops events outside [now-since, now-until], per
// spec.md §6's --since/--until flags. Either bound may be empty to mean
// "unbounded" on that side.
func filterByTimeWindow(events []event.Event, since, until string) ([]event.Event, error) {
	if since == "" && until == "" {
		return events, nil
	}

	now := event.Now()
	var minTS, maxTS int64
	hasMin, hasMax := false, false

	if since != "" {
		d, err := cliutil.ParseDuration(since)
		if err != nil {
			return nil, errors.Wrap(errors.KindMissingArgument, "parse --since", err)
		}
		minTS = now.Add(-d).Unix()
		hasMin = true
	}
	if until != "" {
		d, err := cliutil.ParseDuration(until)
		if err != nil {
			return nil, errors.Wrap(errors.KindMissingArgument, "parse --until", err)
		}
		maxTS = now.Add(-d).Unix()
		hasMax = true
	}

	out := make([]event.Event, 0, len(events))
	for _, ev := range events {
		if hasMin && ev.Timestamp < minTS {
			continue
		}
		if hasMax && ev.Timestamp > maxTS {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

// resolveOutputFormat applies the --output flag, falling back to the
// PTX_CONFIG defaults.output value, and finally "table".
func resolveOutputFormat(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.Defaults.Output != "" {
		return cfg.Defaults.Output
	}
	return cliutil.FormatTable
}

// writeResult renders an executor Result to stdout in format, deriving
// the aggregate-row header order from q.Group/q.Aggs since exec.Row is
// an unordered map.
func writeResult(format string, result exec.Result, q *query.Query, fields []string) error {
	out := cliutil.New(format, os.Stdout)
	if result.Rows != nil {
		return out.WriteRows(rowHeaders(q), result.Rows)
	}
	return out.WriteEvents(result.Events, fields)
}

// rowHeaders reproduces the synthesized Row key names internal/exec's
// applyAgg assigns, in query order: group fields first, then one key
// per aggregate clause.
func rowHeaders(q *query.Query) []string {
	headers := make([]string, 0, len(q.Group)+len(q.Aggs))
	headers = append(headers, q.Group...)
	for _, agg := range q.Aggs {
		switch agg.Func {
		case query.AggCount:
			headers = append(headers, "count")
		case query.AggSum:
			headers = append(headers, "sum_"+agg.Field)
		case query.AggAvg:
			headers = append(headers, "avg_"+agg.Field)
		case query.AggMin:
			headers = append(headers, "min_"+agg.Field)
		case query.AggMax:
			headers = append(headers, "max_"+agg.Field)
		}
	}
	return headers
}
