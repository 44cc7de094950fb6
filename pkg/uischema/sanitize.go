// Package uischema holds presentation-boundary helpers for schema-supplied
// display strings. Schema authors control description and placeholder text,
// so anything echoed into a UI is sanitized first.
package uischema

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// DisplayText strips all markup from a schema-supplied string, leaving
// plain text suitable for terminal output or attribute values.
func DisplayText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := plainTextPolicy().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func plainTextPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
