package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const notAvailable = "Not available"

// First run of digits with at most one decimal point. "4.5 stars" -> 4.5,
// "(273)" -> 273. No match is "no value", which is distinct from zero.
var numberPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// extractText returns the trimmed text of the first element matching the
// selector, or the empty string when nothing matches
func extractText(s *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	target := s.Find(selector).First()
	if target.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(target.Text())
}

// extractTextAlt tries the primary selector, then the alternate
func extractTextAlt(s *goquery.Selection, primary, alt string) string {
	if text := extractText(s, primary); text != "" {
		return text
	}
	return extractText(s, alt)
}

// extractAttr returns the trimmed attribute value of the first match
func extractAttr(s *goquery.Selection, selector, attr string) string {
	if selector == "" {
		return ""
	}
	target := s.Find(selector).First()
	if target.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(target.AttrOr(attr, ""))
}

// ExtractNumber parses the first numeric token out of a ratings or review
// string. It returns nil when the string holds no number at all.
func ExtractNumber(text string) *float64 {
	match := numberPattern.FindString(text)
	if match == "" {
		return nil
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &value
}

// stripPrefix removes a URI scheme prefix such as "tel:" or "mailto:" and
// trims the remainder
func stripPrefix(value, prefix string) string {
	if strings.HasPrefix(value, prefix) {
		return strings.TrimSpace(strings.TrimPrefix(value, prefix))
	}
	return value
}

// orDefault substitutes the shared placeholder for an absent field
func orDefault(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}
