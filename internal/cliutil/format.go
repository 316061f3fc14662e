// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package cliutil implements the output-formatter and print-helper
// collaborators spec.md §1 treats as external ("the executor emits
// either events or row maps; a formatter is any object that consumes
// those"). It is grounded on the teacher's internal/cli.OutputFormatter,
// generalized from its json/yaml/table trio to the full
// table/json/csv/yaml/pretty/chart set spec.md §6 names for `--output`.
package cliutil

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/ptxhq/ptx/internal/event"
	"github.com/ptxhq/ptx/internal/exec"
)

// Format names accepted by --output, per spec.md §6.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatCSV    = "csv"
	FormatYAML   = "yaml"
	FormatPretty = "pretty"
	FormatChart  = "chart"
)

// Formatter renders an executor Result in one of the formats above.
type Formatter struct {
	w      io.Writer
	format string
}

// New builds a Formatter writing to w in the named format.
func New(format string, w io.Writer) *Formatter {
	return &Formatter{w: w, format: format}
}

// WriteEvents renders events. When fields is empty, the header is
// "timestamp", "source", then every other field name encountered across
// events in sorted order — deterministic regardless of Go's random map
// iteration order.
func (f *Formatter) WriteEvents(events []event.Event, fields []string) error {
	headers := fields
	if len(headers) == 0 {
		headers = unionFieldNames(events)
	}
	rows := make([][]string, len(events))
	for i, ev := range events {
		rows[i] = eventRow(ev, headers)
	}
	return f.write(headers, rows, eventsAsMaps(events, headers))
}

// WriteRows renders aggregate row maps under an explicit, caller-supplied
// header order (group fields then aggregate keys, in query order) since
// Row is a plain map with no ordering of its own.
func (f *Formatter) WriteRows(headers []string, rows []exec.Row) error {
	strRows := make([][]string, len(rows))
	for i, row := range rows {
		strRows[i] = rowToStrings(row, headers)
	}
	return f.write(headers, strRows, rowsAsMaps(rows, headers))
}

// WriteLines renders a plain list of strings (used by the
// `formats`/`sources` introspection commands).
func (f *Formatter) WriteLines(lines []string) error {
	switch f.format {
	case FormatJSON:
		return f.encodeJSON(lines)
	case FormatYAML:
		return f.encodeYAML(lines)
	default:
		for _, line := range lines {
			fmt.Fprintln(f.w, line)
		}
		return nil
	}
}

func (f *Formatter) write(headers []string, rows [][]string, structured []map[string]string) error {
	switch f.format {
	case FormatJSON:
		return f.encodeJSON(structured)
	case FormatYAML:
		return f.encodeYAML(structured)
	case FormatCSV:
		return f.writeCSV(headers, rows)
	case FormatPretty:
		return f.writePretty(headers, rows)
	case FormatChart:
		return f.writeChart(headers, rows)
	case FormatTable, "":
		return f.writeTable(headers, rows)
	default:
		return fmt.Errorf("cliutil: unsupported output format %q", f.format)
	}
}

func (f *Formatter) encodeJSON(v interface{}) error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (f *Formatter) encodeYAML(v interface{}) error {
	enc := yaml.NewEncoder(f.w)
	defer enc.Close()
	return enc.Encode(v)
}

func (f *Formatter) writeCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.w)
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (f *Formatter) writeTable(headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(f.w)
	table.Header(headers...)
	for _, row := range rows {
		if err := table.Append(row...); err != nil {
			return err
		}
	}
	return table.Render()
}

// writePretty renders one record per block, "field: value" per line,
// blank line between records — readable for wide or few-row outputs
// where a table's fixed columns waste space.
func (f *Formatter) writePretty(headers []string, rows [][]string) error {
	for i, row := range rows {
		if i > 0 {
			fmt.Fprintln(f.w)
		}
		for j, h := range headers {
			if j < len(row) {
				fmt.Fprintf(f.w, "%s: %s\n", h, row[j])
			}
		}
	}
	return nil
}

// writeChart renders an ASCII bar chart keyed by the first column, sized
// by the last column (expected to be numeric, e.g. a count/sum/avg
// aggregate) — a lightweight visual for group-by-count style queries.
func (f *Formatter) writeChart(headers []string, rows [][]string) error {
	if len(headers) == 0 {
		return nil
	}
	valueCol := len(headers) - 1
	maxVal := 0.0
	vals := make([]float64, len(rows))
	for i, row := range rows {
		if valueCol < len(row) {
			if v, ok := parseChartValue(row[valueCol]); ok {
				vals[i] = v
				if v > maxVal {
					maxVal = v
				}
			}
		}
	}
	const barWidth = 40
	for i, row := range rows {
		label := ""
		if len(row) > 0 {
			label = row[0]
		}
		barLen := 0
		if maxVal > 0 {
			barLen = int(vals[i] / maxVal * barWidth)
		}
		fmt.Fprintf(f.w, "%-20s %s %s\n", label, strings.Repeat("#", barLen), row[valueCol])
	}
	return nil
}

func parseChartValue(s string) (float64, bool) {
	if !event.IsNumericLiteralString(s) {
		return 0, false
	}
	var f float64
	_, err := fmt.Sscanf(s, "%g", &f)
	return f, err == nil
}

func unionFieldNames(events []event.Event) []string {
	seen := make(map[string]bool)
	var names []string
	for _, ev := range events {
		for name := range ev.Fields {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return append([]string{"timestamp", "source"}, names...)
}

func eventRow(ev event.Event, headers []string) []string {
	row := make([]string, len(headers))
	for i, h := range headers {
		switch h {
		case "timestamp":
			row[i] = fmt.Sprintf("%d", ev.Timestamp)
		case "source":
			row[i] = ev.Source
		default:
			if v, ok := ev.Get(h); ok {
				row[i] = v.Render()
			}
		}
	}
	return row
}

func rowToStrings(row exec.Row, headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = row[h].Render()
	}
	return out
}

func eventsAsMaps(events []event.Event, headers []string) []map[string]string {
	out := make([]map[string]string, len(events))
	for i, ev := range events {
		m := make(map[string]string, len(headers))
		row := eventRow(ev, headers)
		for j, h := range headers {
			m[h] = row[j]
		}
		out[i] = m
	}
	return out
}

func rowsAsMaps(rows []exec.Row, headers []string) []map[string]string {
	out := make([]map[string]string, len(rows))
	for i, row := range rows {
		m := make(map[string]string, len(headers))
		strs := rowToStrings(row, headers)
		for j, h := range headers {
			m[h] = strs[j]
		}
		out[i] = m
	}
	return out
}
