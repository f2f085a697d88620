package helpers

import (
	"regexp"
	"strings"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Slugify lowercases a name and collapses whitespace runs into single hyphens.
// The result is used as the dedup and binding key for a listing.
func Slugify(name string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
