package tabular

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sampleTable() Table {
	return Normalize([]map[string]any{
		{
			"title":   "Python for Data Analysis",
			"authors": []any{"Wes McKinney"},
			"issued":  "2022-08-01T00:00:00Z",
			"web_url": "https://example.com/pandas",
			"topics":  []any{"python", "data-analysis"},
		},
		{
			"title":   "Untitled Draft",
			"authors": []any{"A", "B"},
		},
	})
}

func TestFormatBooks(t *testing.T) {
	var buf bytes.Buffer
	FormatBooks(sampleTable(), &buf)
	s := buf.String()

	if !strings.Contains(s, "Title: Python for Data Analysis") {
		t.Error("listing should contain the first title")
	}
	if !strings.Contains(s, "Authors: Wes McKinney") {
		t.Error("listing should join and print authors")
	}
	if !strings.Contains(s, "Published: 2022-08-01") {
		t.Error("listing should reformat the published date")
	}
	if !strings.Contains(s, "Topics: python, data-analysis") {
		t.Error("listing should join topics")
	}
	// Second row lacks a URL; shown as N/A like the other missing scalars.
	if !strings.Contains(s, "URL: N/A") {
		t.Error("missing URL should print as N/A")
	}
	if !strings.Contains(s, "2 results") {
		t.Error("listing should end with the result count")
	}
}

func TestFormatBooksEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatBooks(Table{}, &buf)
	if !strings.Contains(buf.String(), "No results found.") {
		t.Errorf("empty table output = %q", buf.String())
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(sampleTable(), &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var parsed []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("len(parsed) = %d, want 2", len(parsed))
	}
	if parsed[0]["title"] != "Python for Data Analysis" {
		t.Errorf("title = %v", parsed[0]["title"])
	}
}
