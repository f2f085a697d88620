package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "leads", cfg.RedisStream)
	assert.Equal(t, 500, cfg.RedisStreamMaxLength)
	assert.Equal(t, "localhost:11211", cfg.MemcacheAddr)
	assert.Equal(t, 5*time.Minute, cfg.ScanInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.ScrapeDelay)
	assert.Equal(t, 100, cfg.MaxBusinesses)
	assert.Equal(t, 2, cfg.MinCriteria)
	assert.Equal(t, 1, cfg.MinReviews)
	assert.Equal(t, "https://www.yelp.com/search", cfg.YelpURL)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SCAN_INTERVAL_SECONDS", "60")
	t.Setenv("SCRAPE_DELAY_MS", "50")
	t.Setenv("MAX_BUSINESSES", "25")
	t.Setenv("MIN_CRITERIA", "3")
	t.Setenv("YELP_URL", "https://www.yelp.com/search?find_loc=Accra")

	cfg := LoadConfig()

	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, time.Minute, cfg.ScanInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.ScrapeDelay)
	assert.Equal(t, 25, cfg.MaxBusinesses)
	assert.Equal(t, 3, cfg.MinCriteria)
	assert.Equal(t, "https://www.yelp.com/search?find_loc=Accra", cfg.YelpURL)
}

func TestValidate(t *testing.T) {
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.MaxBusinesses = 0
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_BUSINESSES")

	bad = cfg
	bad.MinCriteria = 0
	err = bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MIN_CRITERIA")

	bad = cfg
	bad.ScrapeDelay = -time.Second
	err = bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCRAPE_DELAY_MS")
}
