package tabular

import (
	"reflect"
	"testing"
)

func TestNormalizeEmpty(t *testing.T) {
	got := Normalize(nil)
	if len(got.Columns) != 0 || len(got.Rows) != 0 {
		t.Errorf("Normalize(nil) = %+v, want empty table", got)
	}

	got = Normalize([]map[string]any{})
	if len(got.Columns) != 0 || len(got.Rows) != 0 {
		t.Errorf("Normalize([]) = %+v, want empty table", got)
	}
}

func TestNormalizeFlattensNestedObject(t *testing.T) {
	raw := []map[string]any{
		{
			"title":   "X",
			"authors": []any{"A", "B"},
			"info":    map[string]any{"pages": float64(10)},
		},
	}

	got := Normalize(raw)

	wantCols := []string{"authors", "info_pages", "title"}
	if !reflect.DeepEqual(got.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", got.Columns, wantCols)
	}

	row := got.Rows[0]
	if row["title"] != "X" {
		t.Errorf("title = %v", row["title"])
	}
	if !reflect.DeepEqual(row["authors"], []any{"A", "B"}) {
		t.Errorf("authors = %v, want intact sequence", row["authors"])
	}
	if row["info_pages"] != float64(10) {
		t.Errorf("info_pages = %v, want 10", row["info_pages"])
	}
	if _, ok := row["info"]; ok {
		t.Error("flattened parent column 'info' should not survive")
	}
}

func TestNormalizeFirstRowDefinesSchema(t *testing.T) {
	raw := []map[string]any{
		{"title": "First", "publisher": "P1"},
		{"title": "Second", "publisher": "P2", "extra": "dropped"},
	}

	got := Normalize(raw)

	wantCols := []string{"publisher", "title"}
	if !reflect.DeepEqual(got.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", got.Columns, wantCols)
	}
	if _, ok := got.Rows[1]["extra"]; ok {
		t.Error("keys appearing only in later rows should be dropped")
	}
}

func TestNormalizeMissingValuesBecomeNilCells(t *testing.T) {
	raw := []map[string]any{
		{"title": "First", "info": map[string]any{"pages": float64(10), "isbn": "123"}},
		{"title": "Second"},
		{"title": "Third", "info": map[string]any{"pages": float64(99)}},
	}

	got := Normalize(raw)

	if got.Rows[1]["info_pages"] != nil || got.Rows[1]["info_isbn"] != nil {
		t.Errorf("row without nested object should have nil cells, got %+v", got.Rows[1])
	}
	if got.Rows[2]["info_pages"] != float64(99) {
		t.Errorf("info_pages = %v, want 99", got.Rows[2]["info_pages"])
	}
	if got.Rows[2]["info_isbn"] != nil {
		t.Errorf("missing subkey should be a nil cell, got %v", got.Rows[2]["info_isbn"])
	}
}

func TestNormalizeKindFromFirstNonNullRow(t *testing.T) {
	// The first row holds null; the kind comes from the second row.
	raw := []map[string]any{
		{"title": "First", "info": nil},
		{"title": "Second", "info": map[string]any{"pages": float64(5)}},
	}

	got := Normalize(raw)

	wantCols := []string{"info_pages", "title"}
	if !reflect.DeepEqual(got.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", got.Columns, wantCols)
	}
	if got.Rows[0]["info_pages"] != nil {
		t.Errorf("null object row should flatten to nil cells, got %v", got.Rows[0]["info_pages"])
	}
	if got.Rows[1]["info_pages"] != float64(5) {
		t.Errorf("info_pages = %v, want 5", got.Rows[1]["info_pages"])
	}
}

func TestNormalizeAllNullColumnStaysScalar(t *testing.T) {
	raw := []map[string]any{
		{"title": "First", "note": nil},
		{"title": "Second", "note": nil},
	}

	got := Normalize(raw)

	wantCols := []string{"note", "title"}
	if !reflect.DeepEqual(got.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", got.Columns, wantCols)
	}
	if got.Rows[0]["note"] != nil {
		t.Errorf("note = %v, want nil", got.Rows[0]["note"])
	}
}

func TestNormalizeNonObjectKindsUntouched(t *testing.T) {
	// A scalar-kind column keeps later-row values as-is, even when a later
	// row holds a different shape.
	raw := []map[string]any{
		{"format": "book", "topics": []any{"python"}},
		{"format": float64(2), "topics": []any{"go", "devops"}},
	}

	got := Normalize(raw)

	if got.Rows[1]["format"] != float64(2) {
		t.Errorf("format = %v, want 2", got.Rows[1]["format"])
	}
	if !reflect.DeepEqual(got.Rows[1]["topics"], []any{"go", "devops"}) {
		t.Errorf("topics = %v, want intact sequence", got.Rows[1]["topics"])
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := []map[string]any{
		{"title": "X", "authors": []any{"A"}, "info": map[string]any{"pages": float64(1)}},
		{"title": "Y"},
	}

	first := Normalize(raw)
	second := Normalize(raw)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Normalize is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
