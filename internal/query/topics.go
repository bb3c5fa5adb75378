// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

// defaultTopics is the built-in topic set substituted when a search names
// no topics and opts into default filtering.
var defaultTopics = []string{
	"data-science",
	"machine-learning",
	"artificial-intelligence",
	"data-analysis",
	"deep-learning",
	"statistics",
	"big-data",
}

// availableTopics is a curated catalog of common topics. It is static
// rather than fetched from the provider.
var availableTopics = []string{
	"python",
	"javascript",
	"java",
	"data-science",
	"machine-learning",
	"web-development",
	"devops",
	"security",
	"cloud",
	"databases",
	"programming",
	"software-engineering",
	"artificial-intelligence",
	"data-analysis",
	"deep-learning",
	"statistics",
	"big-data",
}

// DefaultTopics returns a copy of the built-in default topic set.
func DefaultTopics() []string {
	out := make([]string, len(defaultTopics))
	copy(out, defaultTopics)
	return out
}

// AvailableTopics returns a copy of the curated topic catalog, in fixed order.
func AvailableTopics() []string {
	out := make([]string, len(availableTopics))
	copy(out, availableTopics)
	return out
}
