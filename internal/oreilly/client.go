// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package oreilly is the HTTP client for the O'Reilly Learning catalog
// search API.
package oreilly

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/bookfinder/internal/httputil"
	"github.com/pdiddy/bookfinder/internal/query"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// searchAPIBase is the catalog search endpoint. Declared as a var so tests
// can substitute an httptest server.
var searchAPIBase = "https://learning.oreilly.com/api/v2/search/"

// TransportError reports a failed catalog request: a non-2xx status, a
// network failure, or an unparseable response body. Status is 0 when no
// HTTP response was received.
type TransportError struct {
	Status int
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("catalog request to %s returned HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("catalog request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client queries the catalog search API.
type Client struct {
	HTTPClient *http.Client
}

// searchResponse is the envelope the search endpoint returns. Individual
// results stay untyped: their shape is irregular and the normalizer owns
// flattening them.
type searchResponse struct {
	Results []map[string]any `json:"results"`
	Total   int              `json:"total"`
}

// Search issues one GET against the search endpoint and returns the raw
// result list. A missing or empty results key yields an empty list, not an
// error. All transport-level failures return a *TransportError; the caller
// decides how to surface them.
func (c *Client) Search(ctx context.Context, params query.Params, cfg types.SearchConfig) ([]map[string]any, error) {
	reqURL := searchAPIBase + "?" + params.Values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, cfg.MaxRetries)
	if err != nil {
		return nil, &TransportError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Status: resp.StatusCode, URL: reqURL}
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, &TransportError{URL: reqURL, Err: fmt.Errorf("parsing search response: %w", err)}
	}

	return sr.Results, nil
}
