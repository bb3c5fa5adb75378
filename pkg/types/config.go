// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the bookfinder CLI.
package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound catalog requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "bookfinder/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for catalog searches.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Limit is the number of results requested per page (default 10).
	Limit int `json:"limit" yaml:"limit"`

	// Page is the zero-based result page to request (default 0).
	Page int `json:"page" yaml:"page"`

	// UseDefaultTopics substitutes the built-in data science/AI topic set
	// when no explicit topics are given (default true).
	UseDefaultTopics bool `json:"use_default_topics" yaml:"use_default_topics"`

	// DefaultTopics overrides the built-in default topic set. Empty means
	// use the built-in list.
	DefaultTopics []string `json:"default_topics,omitempty" yaml:"default_topics,omitempty"`

	// MaxRetries is the number of retry attempts on HTTP 429 (0 = helper default).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}
