package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScraperError_Error(t *testing.T) {
	wrapped := errors.New("connection refused")

	withCause := NewNetwork("Yelp", "failed to fetch page", wrapped)
	assert.Equal(t, "[network] Yelp: failed to fetch page - connection refused", withCause.Error())

	withoutCause := NewValidation("Yelp", "missing name")
	assert.Equal(t, "[validation] Yelp: missing name", withoutCause.Error())
}

func TestScraperError_Unwrap(t *testing.T) {
	wrapped := errors.New("connection refused")
	err := NewStorage("", "failed to write leads", wrapped)

	assert.ErrorIs(t, err, wrapped)
	assert.Nil(t, NewValidation("", "bad input").Unwrap())
}

func TestScraperError_IsRetryable(t *testing.T) {
	assert.True(t, NewNetwork("", "timeout", nil).IsRetryable())
	assert.True(t, NewStorage("", "write failed", nil).IsRetryable())
	assert.False(t, NewParsing("", "bad html", nil).IsRetryable())
	assert.False(t, NewPublisher("", "stream closed", nil).IsRetryable())
	assert.False(t, NewValidation("", "bad input").IsRetryable())
	assert.False(t, NewConfiguration("bad value", nil).IsRetryable())
}

func TestScraperError_Timestamp(t *testing.T) {
	err := New(ErrorTypeNetwork, "Yelp", "timeout", nil)
	assert.False(t, err.Time.IsZero())
}
