// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tabular reshapes raw catalog results into a flat table with a
// stable column set, and projects that table onto the fixed export schema.
package tabular

import "sort"

// Kind classifies the value shape of a column, resolved once per column
// from the first row where the column is non-null.
type Kind int

const (
	// Scalar covers strings, numbers, booleans, and all-null columns.
	Scalar Kind = iota

	// Sequence covers array values. Sequences stay intact in the table;
	// they are joined to strings only at export time.
	Sequence

	// Object covers nested mappings. Object columns are replaced by one
	// flattened column per subkey, named <key>_<subkey>.
	Object
)

// column describes one top-level key of the result schema.
type column struct {
	key     string
	kind    Kind
	subkeys []string // populated for Object columns only
}

// Row is one normalized result keyed by flattened column name. Cells for
// columns a result lacks hold nil.
type Row map[string]any

// Table is an ordered sequence of normalized rows sharing one column set.
type Table struct {
	Columns []string
	Rows    []Row
}

// Normalize flattens raw provider results into a Table. The column set and
// order are determined by the first row's shape: later rows missing a
// column get a nil cell, and keys appearing only in later rows are dropped.
// The provider returns homogeneous result shapes in practice, so the first
// row is treated as authoritative.
//
// Nested objects flatten one level: key "info" with subkey "pages" becomes
// column "info_pages". Map iteration order is not stable in Go, so column
// order is the first row's keys sorted lexicographically, with flattened
// subkey columns replacing their parent in place.
//
// Normalize is pure: an empty input yields an empty Table with no columns,
// and repeated calls over the same input yield identical output.
func Normalize(results []map[string]any) Table {
	if len(results) == 0 {
		return Table{}
	}

	schema := deriveSchema(results)

	var names []string
	for _, col := range schema {
		if col.kind == Object {
			for _, sub := range col.subkeys {
				names = append(names, col.key+"_"+sub)
			}
			continue
		}
		names = append(names, col.key)
	}

	rows := make([]Row, len(results))
	for i, raw := range results {
		rows[i] = normalizeRow(raw, schema)
	}

	return Table{Columns: names, Rows: rows}
}

// deriveSchema classifies each top-level key of the first row. The kind
// comes from the first row where the key holds a non-null value; a key that
// is null in every row stays Scalar.
func deriveSchema(results []map[string]any) []column {
	first := results[0]
	keys := make([]string, 0, len(first))
	for k := range first {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	schema := make([]column, 0, len(keys))
	for _, key := range keys {
		schema = append(schema, classify(key, results))
	}
	return schema
}

// classify finds the first non-null value for key and derives the column kind.
func classify(key string, results []map[string]any) column {
	for _, raw := range results {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch tv := v.(type) {
		case map[string]any:
			subkeys := make([]string, 0, len(tv))
			for sub := range tv {
				subkeys = append(subkeys, sub)
			}
			sort.Strings(subkeys)
			return column{key: key, kind: Object, subkeys: subkeys}
		case []any:
			return column{key: key, kind: Sequence}
		default:
			return column{key: key, kind: Scalar}
		}
	}
	return column{key: key, kind: Scalar}
}

// normalizeRow projects one raw result onto the schema. Missing keys and
// missing subkeys degrade to nil cells, never errors.
func normalizeRow(raw map[string]any, schema []column) Row {
	row := make(Row)
	for _, col := range schema {
		if col.kind != Object {
			row[col.key] = raw[col.key]
			continue
		}

		inner, _ := raw[col.key].(map[string]any)
		for _, sub := range col.subkeys {
			if inner == nil {
				row[col.key+"_"+sub] = nil
				continue
			}
			row[col.key+"_"+sub] = inner[sub]
		}
	}
	return row
}
