// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query translates structured search filters into the catalog
// provider's query syntax.
package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

const dateFmt = "2006-01-02"

// Filter holds the user-supplied search criteria. A Filter is a plain
// value; Build never mutates it.
type Filter struct {
	// FreeText is the free-text portion of the query, passed through verbatim.
	FreeText string

	// Author restricts results to a single author. Multi-word names are
	// supported by quoting; embedded double quotes are not escaped.
	Author string

	// PublishedAfter and PublishedBefore bound the publication date.
	// Zero values mean unbounded.
	PublishedAfter  time.Time
	PublishedBefore time.Time

	// Topics lists explicit topic filters, in order.
	Topics []string

	// UseDefaultTopics substitutes the builder's default topic set when
	// Topics is empty.
	UseDefaultTopics bool

	// Fields selects which record fields the provider should return.
	// Empty means full records.
	Fields []string
}

// Params is the provider-ready form of a search: the compiled query string
// plus paging and format parameters. Params is constructed by Build and
// never mutated afterwards.
type Params struct {
	Query   string
	Limit   int
	Page    int
	Formats string
	Fields  string
}

// Values returns the Params as URL query parameters for the search endpoint.
func (p Params) Values() url.Values {
	v := url.Values{
		"query":   {p.Query},
		"limit":   {strconv.Itoa(p.Limit)},
		"page":    {strconv.Itoa(p.Page)},
		"formats": {p.Formats},
	}
	if p.Fields != "" {
		v.Set("fields", p.Fields)
	}
	return v
}

// Builder compiles Filters into Params. The default topic set is injected
// at construction so concurrent searches with different overrides never
// interfere.
type Builder struct {
	DefaultTopics []string
}

// NewBuilder returns a Builder using the built-in default topic set.
func NewBuilder() Builder {
	return Builder{DefaultTopics: DefaultTopics()}
}

// Build compiles a Filter into provider query parameters. It is a total
// function: every Filter produces a valid Params.
//
// Clause order is fixed: free text, author, date bounds, then one
// topic:<name> clause per effective topic, all space-joined. An otherwise
// empty query becomes the wildcard "*" so the provider always receives a
// non-empty query string.
func (b Builder) Build(f Filter, limit, page int) Params {
	var clauses []string

	if f.FreeText != "" {
		clauses = append(clauses, f.FreeText)
	}
	if f.Author != "" {
		// Quoted unconditionally to tolerate multi-word names. Embedded
		// quotes are not escaped; the provider treats them as literals.
		clauses = append(clauses, `author:"`+f.Author+`"`)
	}
	if !f.PublishedAfter.IsZero() {
		clauses = append(clauses, "issued:>"+f.PublishedAfter.Format(dateFmt))
	}
	if !f.PublishedBefore.IsZero() {
		clauses = append(clauses, "issued:<"+f.PublishedBefore.Format(dateFmt))
	}
	if len(clauses) == 0 {
		clauses = append(clauses, "*")
	}

	for _, topic := range b.effectiveTopics(f) {
		clauses = append(clauses, "topic:"+topic)
	}

	return Params{
		Query:   strings.Join(clauses, " "),
		Limit:   limit,
		Page:    page,
		Formats: "book",
		Fields:  strings.Join(f.Fields, ","),
	}
}

// effectiveTopics resolves the topic list: explicit topics win, then the
// builder's default set when the filter opts in, otherwise none.
func (b Builder) effectiveTopics(f Filter) []string {
	if len(f.Topics) > 0 {
		return f.Topics
	}
	if f.UseDefaultTopics {
		return b.DefaultTopics
	}
	return nil
}
