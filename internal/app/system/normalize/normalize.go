// Package normalize trims and canonicalizes user-entered form values before
// they are validated or sent to the fest API.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}
