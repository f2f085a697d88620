package scraper

import (
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Listing represents one extracted business record. The JSON shape is the
// persisted shape, so field tags must stay stable.
type Listing struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Rating         *float64  `json:"rating,omitempty"`
	ReviewCount    int       `json:"reviewCount"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	HasWebsite     bool      `json:"hasWebsite"`
	WebsiteStatus  string    `json:"websiteStatus"`
	Hours          string    `json:"hours"`
	Email          string    `json:"email,omitempty"`
	DetailURL      string    `json:"mapsUrl"`
	ScrapedAt      time.Time `json:"scrapedAt"`
	Source         string    `json:"source,omitempty"`
	IsActive       bool      `json:"isActive"`
	ActivityStatus string    `json:"activityStatus"`
}

// ScanResult is the terminal outcome of one scan request
type ScanResult struct {
	Success  bool      `json:"success"`
	Count    int       `json:"count,omitempty"`
	Listings []Listing `json:"leads,omitempty"`
	Message  string    `json:"message,omitempty"`
}

// Scraper interface defines the contract for all scraper implementations
type Scraper interface {
	// Scan fetches the configured page and extracts its listings
	Scan() *ScanResult

	// ScanDocument extracts listings from an already-loaded document
	ScanDocument(doc *goquery.Document) *ScanResult

	// GetName returns the scraper's name for logging and identification
	GetName() string

	// Session returns the scraper's scan session
	Session() *Session
}

// Criterion is one boolean activity signal evaluated against a listing
type Criterion func(Listing) bool

// ActivityRule is the point-accumulation rule labelling a listing active
type ActivityRule struct {
	MinCriteria int
	Criteria    []Criterion
}

// IsActive counts the satisfied criteria and compares against the threshold
func (r ActivityRule) IsActive(l Listing) bool {
	count := 0
	for _, c := range r.Criteria {
		if c(l) {
			count++
		}
	}
	return count >= r.MinCriteria
}

// Selectors contains CSS selectors for the fields of one source's listing card
type Selectors struct {
	Card        string
	Name        string
	NameAlt     string
	Category    string
	Rating      string
	RatingAttr  string // attribute carrying the rating text, empty means element text
	ReviewCount string
	Address     string
	AddressAlt  string
	Phone       string
	PhoneAlt    string
	Website     string
	Email       string
	Hours       string
	Link        string
}

// ScraperConfig contains the full configuration for one source scraper
type ScraperConfig struct {
	Name            string // for logging and identification
	URL             string
	BaseURL         string
	Source          string // label written into records; empty for the maps source
	Selectors       Selectors
	CategoryDefault string
	HasEmail        bool
	Website         WebsiteRule
	Activity        ActivityRule
	MaxListings     int
	ScrapeDelay     time.Duration
	NoCardsMessage  string
}

// LeadSink receives a completed scan's listings for wholesale persistence
type LeadSink interface {
	SaveLeads(listings []Listing, scannedAt time.Time) error
}
