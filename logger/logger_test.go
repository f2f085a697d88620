package logger

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LEADFINDER_ENVIRONMENT", "")
	assert.Equal(t, zerolog.DebugLevel, getLogLevel())

	t.Setenv("LEADFINDER_ENVIRONMENT", "production")
	assert.Equal(t, zerolog.InfoLevel, getLogLevel())

	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, zerolog.WarnLevel, getLogLevel())

	t.Setenv("LOG_LEVEL", "not-a-level")
	assert.Equal(t, zerolog.InfoLevel, getLogLevel())
}

func TestScopedLoggers(t *testing.T) {
	require.NotNil(t, ForScraper("Yelp"))
	require.NotNil(t, ForWorker())
	require.NotNil(t, ForStore())
	require.NotNil(t, ForPublisher())
}

func TestLoggerChaining(t *testing.T) {
	Init()
	require.NotNil(t, Default)

	l := Default.
		WithField("scraper", "Yelp").
		WithFields(Fields{"count": 3}).
		WithError(errors.New("timeout"))
	require.NotNil(t, l)

	l.Debug().Msg("chained logger works")
}
