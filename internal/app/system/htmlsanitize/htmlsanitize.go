// Package htmlsanitize cleans rich-text fields fetched from the fest API
// (event and merch descriptions) before they are rendered unescaped.
package htmlsanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// Rich sanitizes an HTML fragment and marks it safe for templates.
func Rich(s string) template.HTML {
	return template.HTML(policy.Sanitize(s))
}

// Strict strips all markup, leaving plain text.
func Strict(s string) string {
	return bluemonday.StrictPolicy().Sanitize(s)
}
