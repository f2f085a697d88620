package store

import (
	"encoding/json"
	"time"

	"winnidebz1/leadfinder/internal/scraper"
	apperr "winnidebz1/leadfinder/pkg/errors"
)

// Keys owned by the lead store
const (
	keyLeads    = "leads"
	keyLastScan = "lastScan"
	keyStats    = "stats"
)

// Stats accumulates scan totals across the lifetime of the store
type Stats struct {
	TotalScans int `json:"totalScans"`
	TotalLeads int `json:"totalLeads"`
}

// LeadStore owns the persisted leads, the last-scan timestamp, and the scan
// stats on top of an opaque key-value Store. Every successful scan replaces
// the stored leads wholesale; nothing is ever merged.
type LeadStore struct {
	store Store
}

// NewLeadStore creates a lead store on top of a key-value backend
func NewLeadStore(s Store) *LeadStore {
	return &LeadStore{store: s}
}

// SaveLeads overwrites the stored leads and the last-scan timestamp
func (ls *LeadStore) SaveLeads(listings []scraper.Listing, scannedAt time.Time) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return apperr.NewStorage("", "failed to encode leads", err)
	}
	stamp, err := scannedAt.MarshalText()
	if err != nil {
		return apperr.NewStorage("", "failed to encode scan timestamp", err)
	}

	err = ls.store.Set(map[string][]byte{
		keyLeads:    data,
		keyLastScan: stamp,
	})
	if err != nil {
		return apperr.NewStorage("", "failed to write leads", err)
	}
	return nil
}

// LoadLeads returns the stored leads; an absent key yields an empty slice
func (ls *LeadStore) LoadLeads() ([]scraper.Listing, error) {
	values, err := ls.store.Get(keyLeads)
	if err != nil {
		return nil, apperr.NewStorage("", "failed to read leads", err)
	}

	data, ok := values[keyLeads]
	if !ok {
		return []scraper.Listing{}, nil
	}

	var listings []scraper.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, apperr.NewStorage("", "failed to decode leads", err)
	}
	return listings, nil
}

// LastScan returns the stored scan timestamp and whether one exists
func (ls *LeadStore) LastScan() (time.Time, bool, error) {
	values, err := ls.store.Get(keyLastScan)
	if err != nil {
		return time.Time{}, false, apperr.NewStorage("", "failed to read scan timestamp", err)
	}

	data, ok := values[keyLastScan]
	if !ok {
		return time.Time{}, false, nil
	}

	var at time.Time
	if err := at.UnmarshalText(data); err != nil {
		return time.Time{}, false, apperr.NewStorage("", "failed to decode scan timestamp", err)
	}
	return at, true, nil
}

// Clear removes the stored leads and timestamp. Clearing an empty store is
// the same as clearing once.
func (ls *LeadStore) Clear() error {
	if err := ls.store.Remove(keyLeads, keyLastScan); err != nil {
		return apperr.NewStorage("", "failed to clear leads", err)
	}
	return nil
}

// AddStats accumulates scan and lead totals
func (ls *LeadStore) AddStats(scans, leads int) (Stats, error) {
	stats, err := ls.Stats()
	if err != nil {
		return Stats{}, err
	}

	stats.TotalScans += scans
	stats.TotalLeads += leads

	data, err := json.Marshal(stats)
	if err != nil {
		return Stats{}, apperr.NewStorage("", "failed to encode stats", err)
	}
	if err := ls.store.Set(map[string][]byte{keyStats: data}); err != nil {
		return Stats{}, apperr.NewStorage("", "failed to write stats", err)
	}
	return stats, nil
}

// Stats returns the accumulated totals; an absent key yields zero totals
func (ls *LeadStore) Stats() (Stats, error) {
	values, err := ls.store.Get(keyStats)
	if err != nil {
		return Stats{}, apperr.NewStorage("", "failed to read stats", err)
	}

	data, ok := values[keyStats]
	if !ok {
		return Stats{}, nil
	}

	var stats Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return Stats{}, apperr.NewStorage("", "failed to decode stats", err)
	}
	return stats, nil
}
