package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Directory sites render "no website" in different ways: placeholder dash
// text, absent hrefs, disabled javascript: links, or links back into the
// directory itself. One site (Yelp) inverts the rule and only counts a
// website when the link goes through its external redirect. WebsiteRule is
// the per-source decision table.
type WebsiteRule struct {
	// RequireHrefSubstring, when set, means a listing has a website only if
	// the link target contains this fragment. All other checks are skipped.
	RequireHrefSubstring string

	// CheckPlaceholderText enables matching the link text against the known
	// "no website" placeholder strings.
	CheckPlaceholderText bool

	// InternalDomain marks link targets pointing back at the directory's own
	// domain as "no website".
	InternalDomain string
}

// Trimmed lowercased link texts that mean "no website"
var noWebsitePlaceholders = []string{"—", "-", "n/a", "not available", "no website", ""}

// HasWebsite resolves the website-bearing element inside the card and applies
// the source's rule. It is a pure decision over (text, href); it never fails.
func (r WebsiteRule) HasWebsite(card *goquery.Selection, selector string) bool {
	if selector == "" {
		return false
	}
	link := card.Find(selector).First()
	if link.Length() == 0 {
		return false
	}

	href := strings.TrimSpace(link.AttrOr("href", ""))

	if r.RequireHrefSubstring != "" {
		return strings.Contains(href, r.RequireHrefSubstring)
	}

	if r.CheckPlaceholderText {
		text := strings.ToLower(strings.TrimSpace(link.Text()))
		for _, placeholder := range noWebsitePlaceholders {
			if text == placeholder {
				return false
			}
		}
	}

	if href == "" || href == "#" || strings.HasPrefix(href, "javascript:") {
		return false
	}

	if r.InternalDomain != "" && strings.Contains(href, r.InternalDomain) {
		return false
	}

	return true
}
