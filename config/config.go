package config

import (
	"os"
	"strconv"
	"time"

	apperr "winnidebz1/leadfinder/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Redis configuration
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamMaxLength int

	// Memcache configuration
	MemcacheAddr string

	// Scan configuration
	ScanInterval  time.Duration
	ScrapeDelay   time.Duration
	MaxBusinesses int
	MinCriteria   int
	MinReviews    int

	// URLs for the supported directory sources
	GoogleMapsURL    string
	YelpURL          string
	YellowPagesURL   string
	BusinessGhanaURL string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamMaxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	scanInterval, _ := strconv.Atoi(getEnv("SCAN_INTERVAL_SECONDS", "300"))
	scrapeDelay, _ := strconv.Atoi(getEnv("SCRAPE_DELAY_MS", "500"))
	maxBusinesses, _ := strconv.Atoi(getEnv("MAX_BUSINESSES", "100"))
	minCriteria, _ := strconv.Atoi(getEnv("MIN_CRITERIA", "2"))
	minReviews, _ := strconv.Atoi(getEnv("MIN_REVIEWS", "1"))

	return Config{
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "leads"),
		RedisStreamMaxLength: streamMaxLength,
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", "localhost:11211"),
		ScanInterval:         time.Duration(scanInterval) * time.Second,
		ScrapeDelay:          time.Duration(scrapeDelay) * time.Millisecond,
		MaxBusinesses:        maxBusinesses,
		MinCriteria:          minCriteria,
		MinReviews:           minReviews,
		GoogleMapsURL:        getEnv("GOOGLE_MAPS_URL", "https://www.google.com/maps/search/"),
		YelpURL:              getEnv("YELP_URL", "https://www.yelp.com/search"),
		YellowPagesURL:       getEnv("YELLOW_PAGES_URL", "https://www.yellowpages.com/search"),
		BusinessGhanaURL:     getEnv("BUSINESS_GHANA_URL", "https://www.businessghana.com/site/directory"),
		Environment:          getEnv("LEADFINDER_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for values that cannot be worked with
func (c *Config) Validate() error {
	if c.MaxBusinesses <= 0 {
		return apperr.NewConfiguration("MAX_BUSINESSES must be positive", nil)
	}
	if c.MinCriteria <= 0 {
		return apperr.NewConfiguration("MIN_CRITERIA must be positive", nil)
	}
	if c.ScrapeDelay < 0 {
		return apperr.NewConfiguration("SCRAPE_DELAY_MS must not be negative", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
