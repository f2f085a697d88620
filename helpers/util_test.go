package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Alpha Cafe", "alpha-cafe"},
		{"  Alpha Cafe  ", "alpha-cafe"},
		{"Alpha   Cafe", "alpha-cafe"},
		{"ALPHA CAFE", "alpha-cafe"},
		{"Kumasi Catering & Events", "kumasi-catering-&-events"},
		{"single", "single"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Slugify(tc.input), "input %q", tc.input)
	}
}

func TestSlugify_SameNameSameID(t *testing.T) {
	assert.Equal(t, Slugify("Beta  Salon"), Slugify("beta salon"))
}
