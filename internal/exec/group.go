// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package exec

import (
	"strings"

	"github.com/ptxhq/ptx/internal/event"
	"github.com/ptxhq/ptx/internal/query"
)

type groupBucket struct {
	key    string
	first  event.Event
	events []event.Event
}

// groupAggregate implements spec.md §4.8 rule 2. Events partition into
// groups keyed by the tuple of group-field values (missing treated as
// the empty string, compared byte-wise); an empty group list with
// aggregates present collapses everything into one synthetic group.
// Groups are emitted in first-occurrence order for determinism ahead of
// any later sort clause.
func groupAggregate(q *query.Query, events []event.Event) []Row {
	buckets := make(map[string]*groupBucket)
	var order []string

	for _, ev := range events {
		key := groupKey(q.Group, ev)
		b, ok := buckets[key]
		if !ok {
			b = &groupBucket{key: key, first: ev}
			buckets[key] = b
			order = append(order, key)
		}
		b.events = append(b.events, ev)
	}

	rows := make([]Row, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		row := make(Row, len(q.Group)+len(q.Aggs))
		for _, field := range q.Group {
			row[field] = fieldOrEmpty(b.first, field)
		}
		for _, agg := range q.Aggs {
			applyAgg(row, agg, b.events)
		}
		rows = append(rows, row)
	}
	return rows
}

func groupKey(fields []string, ev event.Event) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fieldOrEmpty(ev, f).Render()
	}
	return strings.Join(parts, "\x1f")
}

func applyAgg(row Row, agg query.Agg, events []event.Event) {
	switch agg.Func {
	case query.AggCount:
		row["count"] = event.Int(int64(len(events)))
	case query.AggSum:
		var sum float64
		for _, ev := range events {
			if v, ok := ev.Get(agg.Field); ok {
				if f, ok := v.AsFloat64Numeric(); ok {
					sum += f
				}
			}
		}
		row["sum_"+agg.Field] = event.Float(sum)
	case query.AggAvg:
		var sum float64
		for _, ev := range events {
			if v, ok := ev.Get(agg.Field); ok {
				if f, ok := v.AsFloat64Numeric(); ok {
					sum += f
				}
			}
		}
		avg := 0.0
		if len(events) > 0 {
			avg = sum / float64(len(events))
		}
		row["avg_"+agg.Field] = event.Float(avg)
	case query.AggMin:
		row["min_"+agg.Field] = minMax(agg.Field, events, true)
	case query.AggMax:
		row["max_"+agg.Field] = minMax(agg.Field, events, false)
	}
}

func minMax(field string, events []event.Event, wantMin bool) event.Value {
	var best float64
	have := false
	for _, ev := range events {
		v, ok := ev.Get(field)
		if !ok {
			continue
		}
		f, ok := v.AsFloat64Numeric()
		if !ok {
			continue
		}
		if !have || (wantMin && f < best) || (!wantMin && f > best) {
			best = f
			have = true
		}
	}
	if !have {
		return event.Null
	}
	return event.Float(best)
}
