package scraper

import (
	"winnidebz1/leadfinder/config"
	"winnidebz1/leadfinder/logger"
)

// CreateScrapers creates the scrapers for all supported directory sources
func CreateScrapers(cfg *config.Config, sink LeadSink) []Scraper {
	configurations := sourceConfigs(cfg)

	scrapers := make([]Scraper, 0, len(configurations))
	for _, sc := range configurations {
		scrapers = append(scrapers, NewConfigurableScraper(sc, NewSession(), sink))
	}

	logger.Info("Created %d scrapers", len(scrapers))
	return scrapers
}

// sourceConfigs builds the per-source profiles. Selector maps and rule sets
// differ per site; not every site exposes every field.
func sourceConfigs(cfg *config.Config) []ScraperConfig {
	return []ScraperConfig{
		{
			// Google Maps search results
			Name:   "GoogleMaps",
			URL:    cfg.GoogleMapsURL,
			Source: "",
			Selectors: Selectors{
				Card:        `div[role="article"]`,
				Name:        `h2.fontHeadlineSmall, div.fontHeadlineSmall`,
				Category:    `button[jsaction*="category"]`,
				Rating:      `span[role="img"][aria-label*="star"]`,
				RatingAttr:  "aria-label",
				ReviewCount: `span[aria-label*="review"]`,
				Address:     `button[data-item-id*="address"]`,
				Phone:       `button[data-item-id*="phone"]`,
				Website:     `a[data-item-id*="authority"]`,
				Hours:       `button[data-item-id*="oh"]`,
				Link:        `a[href*="maps"]`,
			},
			CategoryDefault: "Unknown",
			Website:         WebsiteRule{CheckPlaceholderText: true},
			Activity: ActivityRule{
				MinCriteria: cfg.MinCriteria,
				Criteria: []Criterion{
					HasPhone(),
					HasHours(),
					HasReviews(cfg.MinReviews),
					AlwaysVisible(),
					HoursContainOpen(),
				},
			},
			MaxListings:    cfg.MaxBusinesses,
			ScrapeDelay:    cfg.ScrapeDelay,
			NoCardsMessage: "No business listings found. Make sure you are on a Google Maps search results page.",
		},
		{
			// Yelp search results
			Name:    "Yelp",
			URL:     cfg.YelpURL,
			BaseURL: "https://www.yelp.com",
			Source:  "Yelp",
			Selectors: Selectors{
				Card:        `[data-testid="serp-ia-card"]`,
				Name:        `h3 a`,
				NameAlt:     `.businessName`,
				Category:    `[data-testid="serp-ia-card"] span.css-1p9ibgf`,
				Rating:      `[aria-label*="star rating"]`,
				RatingAttr:  "aria-label",
				ReviewCount: `[data-testid="serp-ia-card"] span.css-chan6m`,
				Address:     `address`,
				Phone:       `[data-testid="serp-ia-card"] p.css-1p9ibgf`,
				Website:     `a[href*="biz_redir"]`,
				Link:        `a[href*="/biz/"]`,
			},
			CategoryDefault: "Unknown",
			// Yelp wraps external sites in its redirect, so only a redirect
			// link counts as having a website
			Website: WebsiteRule{RequireHrefSubstring: "biz_redir"},
			Activity: ActivityRule{
				MinCriteria: cfg.MinCriteria,
				Criteria: []Criterion{
					HasPhone(),
					HasReviews(cfg.MinReviews),
					RatingAtLeast(3.0),
				},
			},
			MaxListings:    cfg.MaxBusinesses,
			ScrapeDelay:    cfg.ScrapeDelay,
			NoCardsMessage: "No business listings found. Make sure you are on a Yelp search results page.",
		},
		{
			// Yellow Pages search results
			Name:   "YellowPages",
			URL:    cfg.YellowPagesURL,
			Source: "Yellow Pages",
			Selectors: Selectors{
				Card:        `.result`,
				Name:        `.business-name`,
				NameAlt:     `h2.n a`,
				Category:    `.categories a`,
				Rating:      `.result-rating`,
				ReviewCount: `.count`,
				Address:     `.street-address`,
				Phone:       `.phones`,
				PhoneAlt:    `.phone`,
				Website:     `a.track-visit-website`,
				Link:        `.business-name`,
			},
			CategoryDefault: "Unknown",
			Website:         WebsiteRule{},
			Activity: ActivityRule{
				MinCriteria: cfg.MinCriteria,
				Criteria: []Criterion{
					HasPhone(),
					HasReviews(cfg.MinReviews),
					HasRealAddress(),
				},
			},
			MaxListings:    cfg.MaxBusinesses,
			ScrapeDelay:    cfg.ScrapeDelay,
			NoCardsMessage: "No business listings found. Make sure you are on a Yellow Pages search results page.",
		},
		{
			// BusinessGhana directory pages
			Name:    "BusinessGhana",
			URL:     cfg.BusinessGhanaURL,
			BaseURL: "https://www.businessghana.com",
			Source:  "BusinessGhana",
			Selectors: Selectors{
				Card:        `.business-listing, .company-item, .listing-item, article.business, .directory-item`,
				Name:        `h2 a, h3 a, .business-name, .company-name, .listing-title a`,
				NameAlt:     `.title a, h4 a, .name`,
				Category:    `.category, .business-category, .industry, .sector`,
				Rating:      `.rating, .stars`,
				ReviewCount: `.reviews, .review-count`,
				Address:     `.address, .location, .business-address, .contact-address`,
				AddressAlt:  `.contact .address, .addr`,
				Phone:       `.phone, .telephone, .contact-phone, a[href^="tel:"]`,
				PhoneAlt:    `.contact .phone, .tel`,
				Website:     `a.website, a[rel="nofollow"], a[target="_blank"]:not([href*="businessghana"])`,
				Email:       `a[href^="mailto:"], .email`,
				Link:        `a[href*="/business/"], a[href*="/company/"]`,
			},
			CategoryDefault: "Business",
			HasEmail:        true,
			Website: WebsiteRule{
				CheckPlaceholderText: true,
				InternalDomain:       "businessghana.com",
			},
			Activity: ActivityRule{
				MinCriteria: cfg.MinCriteria,
				Criteria: []Criterion{
					HasRealPhone(),
					HasRealAddress(),
					HasRealEmail(),
					HasReviews(cfg.MinReviews),
				},
			},
			MaxListings:    cfg.MaxBusinesses,
			ScrapeDelay:    cfg.ScrapeDelay,
			NoCardsMessage: "No business listings found. Make sure you are on a BusinessGhana directory page.",
		},
	}
}
