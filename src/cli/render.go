// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderRecords renders a decoded record set as a formatted markdown table.
//
// Column order follows fields when given; otherwise the union of all record
// keys is used in sorted order with "id" pinned first. Nested values are
// rendered as compact JSON.
func RenderRecords(records []map[string]any, fields []string) string {
	if len(records) == 0 {
		return "No records to display"
	}

	headers := fields
	if len(headers) == 0 {
		headers = collectColumns(records)
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header(headers)

	var rows [][]string
	for _, record := range records {
		row := make([]string, len(headers))
		for i, field := range headers {
			row[i] = formatValue(record[field])
		}
		rows = append(rows, row)
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// RenderValues renders a string mapping as a two-column key/value table,
// sorted by key. Used for the bootstrap hints returned by start.
func RenderValues(values map[string]string) string {
	if len(values) == 0 {
		return "No values to display"
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Key", "Value"})

	var rows [][]string
	for _, k := range keys {
		rows = append(rows, []string{k, values[k]})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// collectColumns returns the union of record keys, sorted, with "id" pinned
// to the first column when present.
func collectColumns(records []map[string]any) []string {
	seen := make(map[string]struct{})
	var columns []string
	for _, record := range records {
		for k := range record {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)

	for i, c := range columns {
		if c == "id" && i != 0 {
			copy(columns[1:i+1], columns[:i])
			columns[0] = "id"
			break
		}
	}
	return columns
}

// formatValue renders a single cell. The remote encodes absent values as
// false, so a bare false displays as empty rather than "false".
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if !val {
			return ""
		}
		return "true"
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; print integers without the exponent.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}
