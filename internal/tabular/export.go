// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import (
	"fmt"
	"strings"
	"time"
)

// exportColumn maps a source column to its public display name.
type exportColumn struct {
	source  string
	display string
}

// exportColumns is the fixed, ordered export schema. Source columns absent
// from a table are omitted from the export entirely, never padded.
var exportColumns = []exportColumn{
	{"title", "Title"},
	{"authors", "Authors"},
	{"issued", "Published Date"},
	{"publisher", "Publisher"},
	{"description", "Description"},
	{"topics", "Topics"},
	{"web_url", "URL"},
	{"archive_id", "Archive ID"},
	{"format", "Format"},
}

// ExportTable is the export-ready projection of a Table: display-name
// header plus stringified cells, one row per source row.
type ExportTable struct {
	Header []string
	Rows   [][]string
}

// ToExport projects a Table onto the fixed export schema. The export column
// set is the intersection of the fixed schema and the table's columns, in
// schema order. Sequence cells join with ", ", the published date reformats
// to YYYY-MM-DD, and nil cells render empty.
func ToExport(t Table) ExportTable {
	var cols []exportColumn
	for _, ec := range exportColumns {
		if hasColumn(t, ec.source) {
			cols = append(cols, ec)
		}
	}

	var et ExportTable
	for _, ec := range cols {
		et.Header = append(et.Header, ec.display)
	}
	for _, row := range t.Rows {
		cells := make([]string, len(cols))
		for i, ec := range cols {
			cells[i] = exportCell(ec.source, row[ec.source])
		}
		et.Rows = append(et.Rows, cells)
	}
	return et
}

func hasColumn(t Table, name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// exportCell stringifies one cell for export.
func exportCell(source string, v any) string {
	if v == nil {
		return ""
	}
	if seq := asSequence(v); seq != nil {
		return strings.Join(seq, ", ")
	}
	s := fmt.Sprintf("%v", v)
	if source == "issued" {
		return reformatDate(s)
	}
	return s
}

// asSequence converts array-typed cells to a string slice, or nil for
// non-sequence values.
func asSequence(v any) []string {
	switch tv := v.(type) {
	case []any:
		out := make([]string, len(tv))
		for i, e := range tv {
			out[i] = fmt.Sprintf("%v", e)
		}
		return out
	case []string:
		return tv
	default:
		return nil
	}
}

// dateLayouts are the provider date shapes seen in issued fields.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// reformatDate renders a provider date as YYYY-MM-DD. Values that parse as
// none of the known layouts pass through unchanged.
func reformatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
