package filter

import "winnidebz1/leadfinder/internal/scraper"

// Options are the lead list filters. The zero value passes everything
// through.
type Options struct {
	NoWebsiteOnly bool
	RequirePhone  bool
	ActiveOnly    bool
	MinReviews    int
}

// Apply returns the listings passing every enabled filter, preserving order
func Apply(listings []scraper.Listing, opts Options) []scraper.Listing {
	filtered := make([]scraper.Listing, 0, len(listings))
	for _, l := range listings {
		if opts.NoWebsiteOnly && l.HasWebsite {
			continue
		}
		if opts.RequirePhone && (l.Phone == "" || l.Phone == "Not available") {
			continue
		}
		if opts.ActiveOnly && !l.IsActive {
			continue
		}
		if l.ReviewCount < opts.MinReviews {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered
}

// NoWebsiteCount counts the listings without a website. External surfaces
// badge this number.
func NoWebsiteCount(listings []scraper.Listing) int {
	count := 0
	for _, l := range listings {
		if !l.HasWebsite {
			count++
		}
	}
	return count
}
