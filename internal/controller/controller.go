package controller

import (
	"winnidebz1/leadfinder/internal/scraper"
	"winnidebz1/leadfinder/logger"
	"winnidebz1/leadfinder/services/store"
)

// Command actions understood by the controller
const (
	ActionScanPage     = "scanPage"
	ActionGetResults   = "getResults"
	ActionClearResults = "clearResults"
)

// Request is one inbound command
type Request struct {
	Action string `json:"action"`
	Source string `json:"source,omitempty"`
}

// Response is the single terminal reply to a request
type Response struct {
	Success  bool              `json:"success"`
	Count    int               `json:"count,omitempty"`
	Listings []scraper.Listing `json:"leads,omitempty"`
	Message  string            `json:"message,omitempty"`
}

// Controller dispatches the scan/read/clear commands across the configured
// source scrapers
type Controller struct {
	scrapers map[string]scraper.Scraper
	leads    *store.LeadStore
	log      *logger.Logger
}

// New creates a controller over the given scrapers, indexed by name
func New(scrapers []scraper.Scraper, leads *store.LeadStore) *Controller {
	byName := make(map[string]scraper.Scraper, len(scrapers))
	for _, s := range scrapers {
		byName[s.GetName()] = s
	}
	return &Controller{
		scrapers: byName,
		leads:    leads,
		log:      logger.ForWorker().WithField("component", "controller"),
	}
}

// Dispatch routes a request to its handler. Every request produces exactly
// one response; unknown actions are structured failures, never faults.
func (c *Controller) Dispatch(req Request) Response {
	c.log.Debug().Str("action", req.Action).Str("source", req.Source).Msg("Command received")

	switch req.Action {
	case ActionScanPage:
		return c.scanPage(req.Source)
	case ActionGetResults:
		return c.getResults()
	case ActionClearResults:
		return c.clearResults()
	default:
		return Response{Success: false, Message: "Unknown action"}
	}
}

// scanPage triggers a scan on the named scraper
func (c *Controller) scanPage(source string) Response {
	s, ok := c.scrapers[source]
	if !ok {
		return Response{Success: false, Message: "Unknown source: " + source}
	}

	result := s.Scan()
	return Response{
		Success:  result.Success,
		Count:    result.Count,
		Listings: result.Listings,
		Message:  result.Message,
	}
}

// getResults reads the persisted leads
func (c *Controller) getResults() Response {
	listings, err := c.leads.LoadLeads()
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to load leads")
		return Response{Success: false, Listings: []scraper.Listing{}}
	}
	return Response{Success: true, Listings: listings}
}

// clearResults removes the persisted leads and resets every scraper's
// session. Clearing twice leaves the same empty state as clearing once.
func (c *Controller) clearResults() Response {
	if err := c.leads.Clear(); err != nil {
		c.log.Error().Err(err).Msg("Failed to clear leads")
		return Response{Success: false}
	}
	for _, s := range c.scrapers {
		s.Session().Clear()
	}
	return Response{Success: true}
}
