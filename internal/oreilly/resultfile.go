// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package oreilly

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookfinder/internal/query"
	"github.com/pdiddy/bookfinder/internal/tabular"
)

// ResultFile is the on-disk representation of a search and its normalized
// results. A search can be saved to a file and reloaded later without
// re-querying the catalog.
type ResultFile struct {
	Query   FilterParams     `yaml:"query"`
	Columns []string         `yaml:"columns"`
	Rows    []map[string]any `yaml:"rows"`
	Summary Summary          `yaml:"summary"`
}

// FilterParams stores the search filter in a serializable form.
type FilterParams struct {
	FreeText        string   `yaml:"free_text,omitempty"`
	Author          string   `yaml:"author,omitempty"`
	Topics          []string `yaml:"topics,omitempty"`
	PublishedAfter  string   `yaml:"published_after,omitempty"`
	PublishedBefore string   `yaml:"published_before,omitempty"`
}

// Summary stores result statistics and a timestamp.
type Summary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

const dateFmt = "2006-01-02"

// WriteResultFile saves the filter and normalized table to a YAML file.
func WriteResultFile(path string, f query.Filter, t tabular.Table) error {
	rf := ResultFile{
		Query: FilterParams{
			FreeText: f.FreeText,
			Author:   f.Author,
			Topics:   f.Topics,
		},
		Columns: t.Columns,
		Summary: Summary{
			Total:     len(t.Rows),
			Timestamp: time.Now(),
		},
	}
	if !f.PublishedAfter.IsZero() {
		rf.Query.PublishedAfter = f.PublishedAfter.Format(dateFmt)
	}
	if !f.PublishedBefore.IsZero() {
		rf.Query.PublishedBefore = f.PublishedBefore.Format(dateFmt)
	}
	for _, row := range t.Rows {
		rf.Rows = append(rf.Rows, map[string]any(row))
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}

// Table reconstructs the normalized table stored in the file.
func (rf *ResultFile) Table() tabular.Table {
	t := tabular.Table{Columns: rf.Columns}
	for _, row := range rf.Rows {
		t.Rows = append(t.Rows, tabular.Row(row))
	}
	return t
}
