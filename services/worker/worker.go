package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"winnidebz1/leadfinder/internal/scraper"
	"winnidebz1/leadfinder/logger"
	"winnidebz1/leadfinder/services/publisher"
	"winnidebz1/leadfinder/services/store"
)

// Worker drives the scrapers on an interval, publishing each scan's output
// and accumulating stats
type Worker struct {
	ctx          context.Context
	scrapers     []scraper.Scraper
	publisher    publisher.Publisher
	leads        *store.LeadStore
	scanInterval time.Duration
	log          *logger.Logger
}

// NewWorker creates a new worker
func NewWorker(
	ctx context.Context,
	scrapers []scraper.Scraper,
	pub publisher.Publisher,
	leads *store.LeadStore,
	scanInterval time.Duration,
) *Worker {
	return &Worker{
		ctx:          ctx,
		scrapers:     scrapers,
		publisher:    pub,
		leads:        leads,
		scanInterval: scanInterval,
		log:          logger.ForWorker(),
	}
}

// Start runs scan rounds until the context is cancelled
func (w *Worker) Start() error {
	ticker := time.NewTicker(w.scanInterval)
	defer ticker.Stop()

	for {
		start := time.Now()
		w.runScrapers()
		w.log.Debug().Dur("elapsed", time.Since(start)).Msg("Scan round finished")

		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		case <-ticker.C:
		}
	}
}

// runScrapers runs all the scrapers in parallel and then trims the streams.
// Each scraper holds its own session, so the single-flight guard stays
// per-source.
func (w *Worker) runScrapers() {
	var wg sync.WaitGroup
	for _, s := range w.scrapers {
		wg.Add(1)
		go func(s scraper.Scraper) {
			defer wg.Done()
			w.scanAndPublish(s)
		}(s)
	}
	wg.Wait()

	if err := w.publisher.TrimStreams(); err != nil {
		w.log.Error().Err(err).Msg("Failed to trim streams")
	}
}

// scanAndPublish runs one scraper and publishes its listings
func (w *Worker) scanAndPublish(s scraper.Scraper) {
	name := s.GetName()

	result := s.Scan()
	if !result.Success {
		w.log.Warn().Str("scraper", name).Str("message", result.Message).Msg("Scan did not produce results")
		return
	}

	for _, listing := range result.Listings {
		data, err := json.Marshal(listing)
		if err != nil {
			w.log.Error().Str("scraper", name).Err(err).Msg("Failed to encode listing")
			return
		}

		if err := w.publisher.Publish(name, data); err != nil {
			w.log.Error().Str("scraper", name).Err(err).Msg("Failed to publish listing")
		}
	}

	if w.leads != nil {
		stats, err := w.leads.AddStats(1, result.Count)
		if err != nil {
			w.log.Error().Str("scraper", name).Err(err).Msg("Failed to update stats")
		} else {
			w.log.Info().
				Str("scraper", name).
				Int("count", result.Count).
				Int("total_scans", stats.TotalScans).
				Int("total_leads", stats.TotalLeads).
				Msg("Scan published")
		}
	}
}
