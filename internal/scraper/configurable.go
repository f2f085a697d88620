package scraper

import (
	"fmt"
	"io"
	"strings"
	"time"

	"winnidebz1/leadfinder/helpers"
	"winnidebz1/leadfinder/logger"

	"github.com/PuerkitoBio/goquery"
)

// ConfigurableScraper is the one scraper implementation, parameterized by a
// ScraperConfig per source site
type ConfigurableScraper struct {
	config    ScraperConfig
	session   *Session
	sink      LeadSink
	fetchFunc func() (io.Reader, error)
	log       *logger.Logger
}

// NewConfigurableScraper creates a scraper for one source. The sink may be
// nil, in which case scan output is not persisted.
func NewConfigurableScraper(config ScraperConfig, session *Session, sink LeadSink) *ConfigurableScraper {
	if session == nil {
		session = NewSession()
	}
	s := &ConfigurableScraper{
		config:  config,
		session: session,
		sink:    sink,
		log:     logger.ForScraper(config.Name),
	}
	s.fetchFunc = func() (io.Reader, error) {
		return helpers.FetchWithRandomHeaders(config.URL)
	}
	return s
}

// GetName returns the scraper's name
func (s *ConfigurableScraper) GetName() string {
	return s.config.Name
}

// Session returns the scraper's scan session
func (s *ConfigurableScraper) Session() *Session {
	return s.session
}

// Scan fetches the configured page and extracts its listings. A request
// arriving while another scan is in flight is rejected, not queued.
func (s *ConfigurableScraper) Scan() *ScanResult {
	if !s.session.Begin() {
		return &ScanResult{Success: false, Message: "Scan already in progress"}
	}
	defer s.session.End()

	body, err := s.fetchFunc()
	if err != nil {
		return &ScanResult{Success: false, Message: fmt.Sprintf("Error during scan: %s", err)}
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return &ScanResult{Success: false, Message: fmt.Sprintf("Error during scan: %s", err)}
	}

	return s.scanDocument(doc)
}

// ScanDocument extracts listings from an already-loaded document
func (s *ConfigurableScraper) ScanDocument(doc *goquery.Document) *ScanResult {
	if !s.session.Begin() {
		return &ScanResult{Success: false, Message: "Scan already in progress"}
	}
	defer s.session.End()

	return s.scanDocument(doc)
}

// scanDocument is the scan loop. The caller holds the scanning flag.
func (s *ConfigurableScraper) scanDocument(doc *goquery.Document) *ScanResult {
	cards := doc.Find(s.config.Selectors.Card)
	s.log.Debug().Int("cards", cards.Length()).Msg("Found listing cards")

	if cards.Length() == 0 {
		return &ScanResult{Success: false, Message: s.config.NoCardsMessage}
	}

	results := make([]Listing, 0, cards.Length())
	cards.EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if len(results) >= s.config.MaxListings {
			s.log.Warn().Int("max", s.config.MaxListings).Msg("Reached maximum listing limit")
			return false
		}

		if listing := s.extractListing(card); listing != nil {
			results = append(results, *listing)
			s.log.Debug().Str("name", listing.Name).Msg("Extracted listing")
		}

		// Throttle traversal between cards
		if s.config.ScrapeDelay > 0 {
			time.Sleep(s.config.ScrapeDelay)
		}
		return true
	})

	if s.sink != nil {
		if err := s.sink.SaveLeads(results, time.Now().UTC()); err != nil {
			s.log.Error().Err(err).Msg("Failed to persist scan results")
			return &ScanResult{Success: false, Message: fmt.Sprintf("Error during scan: %s", err)}
		}
	}

	s.session.SetLastResults(results)
	s.log.Info().Int("count", len(results)).Msg("Scan complete")

	return &ScanResult{
		Success:  true,
		Count:    len(results),
		Listings: results,
		Message:  s.successMessage(len(results)),
	}
}

func (s *ConfigurableScraper) successMessage(count int) string {
	if s.config.Source != "" {
		return fmt.Sprintf("Successfully scanned %d businesses from %s", count, s.config.Source)
	}
	return fmt.Sprintf("Successfully scanned %d businesses", count)
}

// extractListing pulls one Listing out of a card selection. A nil return
// means the card is not a listing: no resolvable name, a duplicate of an
// already-seen name, or a card whose extraction failed outright.
func (s *ConfigurableScraper) extractListing(card *goquery.Selection) (listing *Listing) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn().Interface("panic", r).Msg("Skipping card after extraction failure")
			listing = nil
		}
	}()

	sel := s.config.Selectors

	name := extractTextAlt(card, sel.Name, sel.NameAlt)
	if name == "" {
		return nil
	}

	id := helpers.Slugify(name)
	if s.session.Seen(id) {
		return nil
	}

	category := extractText(card, sel.Category)
	if category == "" {
		category = s.config.CategoryDefault
	}

	var ratingText string
	if sel.RatingAttr != "" {
		ratingText = extractAttr(card, sel.Rating, sel.RatingAttr)
	} else {
		ratingText = extractText(card, sel.Rating)
	}
	rating := ExtractNumber(ratingText)

	reviewCount := 0
	if n := ExtractNumber(extractText(card, sel.ReviewCount)); n != nil {
		reviewCount = int(*n)
	}

	phone := orDefault(stripPrefix(extractTextAlt(card, sel.Phone, sel.PhoneAlt), "tel:"))
	address := orDefault(extractTextAlt(card, sel.Address, sel.AddressAlt))
	hours := orDefault(extractText(card, sel.Hours))

	hasWebsite := s.config.Website.HasWebsite(card, sel.Website)
	websiteStatus := "No"
	if hasWebsite {
		websiteStatus = "Yes"
	}

	result := Listing{
		ID:            id,
		Name:          name,
		Category:      category,
		Rating:        rating,
		ReviewCount:   reviewCount,
		Phone:         phone,
		Address:       address,
		HasWebsite:    hasWebsite,
		WebsiteStatus: websiteStatus,
		Hours:         hours,
		DetailURL:     s.detailURL(card),
		ScrapedAt:     time.Now().UTC(),
		Source:        s.config.Source,
	}

	if s.config.HasEmail {
		result.Email = orDefault(stripPrefix(extractText(card, sel.Email), "mailto:"))
	}

	result.IsActive = s.config.Activity.IsActive(result)
	if result.IsActive {
		result.ActivityStatus = "Active"
	} else {
		result.ActivityStatus = "Low activity"
	}

	s.session.MarkSeen(id)

	return &result
}

// detailURL resolves the listing's own page link, falling back to the name
// element's link and finally to the scanned page itself
func (s *ConfigurableScraper) detailURL(card *goquery.Selection) string {
	href := extractAttr(card, s.config.Selectors.Link, "href")
	if href == "" {
		href = extractAttr(card, s.config.Selectors.Name, "href")
	}
	if href == "" {
		return s.config.URL
	}
	return s.resolveURL(href)
}

// resolveURL makes a link absolute against the source's base URL
func (s *ConfigurableScraper) resolveURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	if s.config.BaseURL != "" {
		return s.config.BaseURL + href
	}
	return href
}
