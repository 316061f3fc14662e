// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package exec implements the pure filter → group-aggregate → sort →
// limit executor described in spec.md §4.8.
package exec

import (
	"sort"

	"github.com/ptxhq/ptx/internal/event"
	"github.com/ptxhq/ptx/internal/query"
)

// Row is a synthesized aggregate result: group-field values plus
// aggregate keys ("count", "sum_<f>", "avg_<f>", "min_<f>", "max_<f>").
// spec.md §3 calls out row maps specifically because they carry these
// synthesized keys and omit the raw/source contract Events carry.
type Row map[string]event.Value

// Result holds the executor's output: exactly one of Events or Rows is
// non-nil, depending on whether the query grouped or aggregated.
type Result struct {
	Events []event.Event
	Rows   []Row
}

// Run evaluates q over events and returns the executor's result. Run
// never mutates events and is a pure function of its two arguments, per
// spec.md §4.8's "no state beyond the AST and the input list".
func Run(q *query.Query, events []event.Event) Result {
	filtered := filter(q, events)

	if len(q.Group) > 0 || len(q.Aggs) > 0 {
		rows := groupAggregate(q, filtered)
		sortRows(q, rows)
		rows = limitRows(q, rows)
		return Result{Rows: rows}
	}

	sortEvents(q, filtered)
	filtered = limitEvents(q, filtered)
	return Result{Events: filtered}
}

func filter(q *query.Query, events []event.Event) []event.Event {
	if q.Where == nil {
		out := make([]event.Event, len(events))
		copy(out, events)
		return out
	}
	out := make([]event.Event, 0, len(events))
	for _, ev := range events {
		if Evaluate(*q.Where, ev) {
			out = append(out, ev)
		}
	}
	return out
}

func limitEvents(q *query.Query, events []event.Event) []event.Event {
	if q.Limit == nil {
		return events
	}
	n := int(*q.Limit)
	if n > len(events) {
		n = len(events)
	}
	return events[:n]
}

func limitRows(q *query.Query, rows []Row) []Row {
	if q.Limit == nil {
		return rows
	}
	n := int(*q.Limit)
	if n > len(rows) {
		n = len(rows)
	}
	return rows[:n]
}

func sortEvents(q *query.Query, events []event.Event) {
	if q.Sort == nil {
		return
	}
	field := q.Sort.Field
	less := func(i, j int) bool {
		return lessValues(fieldOrEmpty(events[i], field), fieldOrEmpty(events[j], field))
	}
	if q.Sort.Dir == query.Desc {
		sort.SliceStable(events, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(events, less)
	}
}

func sortRows(q *query.Query, rows []Row) {
	if q.Sort == nil {
		return
	}
	field := q.Sort.Field
	less := func(i, j int) bool {
		return lessValues(rows[i][field], rows[j][field])
	}
	if q.Sort.Dir == query.Desc {
		sort.SliceStable(rows, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(rows, less)
	}
}

func fieldOrEmpty(ev event.Event, name string) event.Value {
	if v, ok := ev.Get(name); ok {
		return v
	}
	return event.Null
}

// lessValues implements spec.md §4.8's sort comparison: numeric if both
// sides parse as finite numbers, else lexicographic on the rendered
// string. Missing/null values render as the empty string.
func lessValues(a, b event.Value) bool {
	af, aok := a.AsFloat64Numeric()
	bf, bok := b.AsFloat64Numeric()
	if aok && bok {
		return af < bf
	}
	return a.Render() < b.Render()
}
