// Package slug converts free text into URL-safe identifiers.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9 -]`)
	whitespace   = regexp.MustCompile(`\s+`)
	multiHyphen  = regexp.MustCompile(`-+`)
)

// Generate converts arbitrary text into a lowercase ASCII slug.
// Deterministic and pure: comparing against a freshly generated slug is
// how callers detect a manually edited slug.
func Generate(text string) string {
	s := strings.ToLower(text)
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Suggestions returns the four alternative slugs offered when a
// candidate is already taken.
func Suggestions(taken string, now time.Time) []string {
	suffix := now.UnixMilli() % 10000
	return []string{
		fmt.Sprintf("%s-%04d", taken, suffix),
		taken + "-new",
		taken + "-updated",
		taken + "-v2",
	}
}
