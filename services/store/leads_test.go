package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winnidebz1/leadfinder/internal/scraper"
)

// memStore is an in-memory Store for testing
type memStore struct {
	data   map[string][]byte
	getErr error
	setErr error
	remErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(keys ...string) (map[string][]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	values := make(map[string][]byte)
	for _, key := range keys {
		if v, ok := m.data[key]; ok {
			values[key] = v
		}
	}
	return values, nil
}

func (m *memStore) Set(values map[string][]byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	for k, v := range values {
		m.data[k] = v
	}
	return nil
}

func (m *memStore) Remove(keys ...string) error {
	if m.remErr != nil {
		return m.remErr
	}
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func sampleListings() []scraper.Listing {
	return []scraper.Listing{
		{ID: "alpha-cafe", Name: "Alpha Cafe", Phone: "024 000 1234", HasWebsite: false, WebsiteStatus: "No"},
		{ID: "beta-salon", Name: "Beta Salon", Phone: "Not available", HasWebsite: true, WebsiteStatus: "Yes"},
	}
}

func TestLeadStore_SaveAndLoad(t *testing.T) {
	ls := NewLeadStore(newMemStore())
	scannedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	require.NoError(t, ls.SaveLeads(sampleListings(), scannedAt))

	loaded, err := ls.LoadLeads()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "alpha-cafe", loaded[0].ID)
	assert.Equal(t, "Beta Salon", loaded[1].Name)

	at, ok, err := ls.LastScan()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, at.Equal(scannedAt))
}

func TestLeadStore_LoadEmpty(t *testing.T) {
	ls := NewLeadStore(newMemStore())

	loaded, err := ls.LoadLeads()
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)

	_, ok, err := ls.LastScan()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLeadStore_SaveOverwrites(t *testing.T) {
	ls := NewLeadStore(newMemStore())

	require.NoError(t, ls.SaveLeads(sampleListings(), time.Now().UTC()))
	require.NoError(t, ls.SaveLeads([]scraper.Listing{{ID: "gamma-tools", Name: "Gamma Tools"}}, time.Now().UTC()))

	loaded, err := ls.LoadLeads()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "gamma-tools", loaded[0].ID)
}

func TestLeadStore_Clear(t *testing.T) {
	ls := NewLeadStore(newMemStore())
	require.NoError(t, ls.SaveLeads(sampleListings(), time.Now().UTC()))

	require.NoError(t, ls.Clear())

	loaded, err := ls.LoadLeads()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	_, ok, err := ls.LastScan()
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing an already-empty store succeeds
	require.NoError(t, ls.Clear())
}

func TestLeadStore_Stats(t *testing.T) {
	ls := NewLeadStore(newMemStore())

	stats, err := ls.Stats()
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)

	stats, err = ls.AddStats(1, 27)
	require.NoError(t, err)
	assert.Equal(t, Stats{TotalScans: 1, TotalLeads: 27}, stats)

	stats, err = ls.AddStats(1, 3)
	require.NoError(t, err)
	assert.Equal(t, Stats{TotalScans: 2, TotalLeads: 30}, stats)

	stats, err = ls.Stats()
	require.NoError(t, err)
	assert.Equal(t, Stats{TotalScans: 2, TotalLeads: 30}, stats)
}

func TestLeadStore_BackendFailures(t *testing.T) {
	backend := newMemStore()
	backend.setErr = errors.New("connection refused")
	ls := NewLeadStore(backend)

	err := ls.SaveLeads(sampleListings(), time.Now().UTC())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write leads")

	backend.setErr = nil
	backend.getErr = errors.New("connection refused")
	_, err = ls.LoadLeads()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read leads")

	backend.getErr = nil
	backend.remErr = errors.New("connection refused")
	err = ls.Clear()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear leads")
}
