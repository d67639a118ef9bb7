// Package textcase provides Unicode-aware case folding for the fields the
// decoding core lower-cases: hostnames, vendor/product identifiers, and
// msgclass strings. Syslog sources are not guaranteed to be ASCII-only,
// so plain strings.ToLower is not sufficient.
package textcase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// Lower returns the Unicode lower-case form of s.
func Lower(s string) string {
	return lowerCaser.String(s)
}
