// Package strutil provides the casing helpers shared by the extractors
// and the tag name resolver.
package strutil

import (
	"strings"
	"unicode"
)

// KebabCase converts camelCase, PascalCase, snake_case or space separated
// text to kebab-case. Consecutive separators collapse to one dash.
func KebabCase(s string) string {
	var b strings.Builder
	prevDash := true // suppress a leading dash
	prevLower := false
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
			prevLower = false
		case unicode.IsUpper(r):
			// boundary on lower->Upper and on Upper->Upper followed by lower
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevDash && (prevLower || nextLower) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
			prevLower = false
		default:
			b.WriteRune(r)
			prevDash = false
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// PascalCase converts kebab-case, snake_case or space separated text to
// PascalCase.
func PascalCase(s string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || r == ' ' || r == '.':
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
