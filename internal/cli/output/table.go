// Package output provides output formatting for cfwkv.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
)

// leadingColumns are placed first, in this order, when present.
var leadingColumns = []string{"id", "name", "title"}

// TableFormatter formats API envelopes as an ASCII table.
type TableFormatter struct {
	NoHeaders bool
}

// Format renders the envelope's "result" (or "errors" when there is no
// result) as a table. Documents with nothing tabular fall back to JSON.
func (f *TableFormatter) Format(w io.Writer, doc []byte) error {
	var data any
	if err := json.Unmarshal(doc, &data); err != nil {
		return err
	}

	table, footer := toTable(data)
	if table == nil {
		return (&JSONFormatter{}).Format(w, doc)
	}

	if err := table.RenderWithOptions(w, f.NoHeaders); err != nil {
		return err
	}
	if footer != "" {
		_, err := fmt.Fprintf(w, "\n%s\n", footer)
		return err
	}
	return nil
}

// toTable picks the tabular part of a document. The footer carries the
// pagination cursor of list results.
func toTable(data any) (*Table, string) {
	switch v := data.(type) {
	case []any:
		return sliceToTable(v), ""
	case map[string]any:
		var footer string
		if info, ok := v["result_info"].(map[string]any); ok {
			if cursor, ok := info["cursor"].(string); ok && cursor != "" {
				footer = "cursor: " + cursor
			}
		}
		if result, ok := v["result"]; ok && result != nil {
			switch r := result.(type) {
			case []any:
				return sliceToTable(r), footer
			case map[string]any:
				return mapToTable(r), footer
			}
			return nil, ""
		}
		if errs, ok := v["errors"].([]any); ok && len(errs) > 0 {
			return sliceToTable(errs), ""
		}
	}
	return nil, ""
}

// sliceToTable converts a list of objects (or scalars) to a table.
func sliceToTable(items []any) *Table {
	table := &Table{}
	if len(items) == 0 {
		return table
	}

	if _, ok := items[0].(map[string]any); !ok {
		table.Headers = []string{"VALUE"}
		for _, item := range items {
			table.AddRow(formatValue(item))
		}
		return table
	}

	columns := columnsOf(items)
	for _, c := range columns {
		table.Headers = append(table.Headers, strings.ToUpper(c))
	}
	for _, item := range items {
		obj, _ := item.(map[string]any)
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = formatValue(obj[c])
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// mapToTable converts a single object to a field/value table.
func mapToTable(obj map[string]any) *Table {
	table := &Table{Headers: []string{"FIELD", "VALUE"}}
	for _, k := range orderColumns(keysOf(obj)) {
		table.AddRow(k, formatValue(obj[k]))
	}
	return table
}

// columnsOf returns the union of object keys across items.
func columnsOf(items []any) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return orderColumns(keys)
}

func keysOf(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	return keys
}

// orderColumns sorts keys alphabetically after the leading columns.
func orderColumns(keys []string) []string {
	rank := func(k string) int {
		for i, c := range leadingColumns {
			if k == c {
				return i
			}
		}
		return len(leadingColumns)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// formatValue formats a decoded JSON value for display.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		if val == "" {
			return "-"
		}
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []any:
		if len(val) == 0 {
			return "-"
		}
		return fmt.Sprintf("[%d items]", len(val))
	case map[string]any:
		if len(val) == 0 {
			return "-"
		}
		return fmt.Sprintf("{%d keys}", len(val))
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table with options.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}
