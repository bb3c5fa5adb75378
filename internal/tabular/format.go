// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatBooks writes a human-readable listing of the table to w, one block
// per book.
func FormatBooks(t Table, w io.Writer) {
	if len(t.Rows) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	for _, row := range t.Rows {
		fmt.Fprintf(w, "\nTitle: %s\n", displayCell(row["title"], "N/A"))
		fmt.Fprintf(w, "Authors: %s\n", displayCell(row["authors"], "N/A"))
		fmt.Fprintf(w, "Published: %s\n", displayDate(row["issued"]))
		fmt.Fprintf(w, "URL: %s\n", displayCell(row["web_url"], "N/A"))
		if hasColumn(t, "topics") {
			fmt.Fprintf(w, "Topics: %s\n", displayCell(row["topics"], ""))
		}
		fmt.Fprintln(w, strings.Repeat("-", 80))
	}

	fmt.Fprintf(w, "\n%d results\n", len(t.Rows))
}

// FormatJSON writes the table rows as indented JSON to w.
func FormatJSON(t Table, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t.Rows)
}

func displayCell(v any, missing string) string {
	if v == nil {
		return missing
	}
	if seq := asSequence(v); seq != nil {
		return strings.Join(seq, ", ")
	}
	return fmt.Sprintf("%v", v)
}

func displayDate(v any) string {
	if v == nil {
		return "N/A"
	}
	return reformatDate(fmt.Sprintf("%v", v))
}
