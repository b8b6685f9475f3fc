package cabin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"basic economy letter", "N", "basic_economy"},
		{"economy letter", "Y", "economy"},
		{"business letter", "J", "business"},
		{"first letter", "F", "first"},
		{"premium economy letter", "W", "premium_economy"},
		{"lowercase letter", "y", "economy"},
		{"already canonical", "economy", "economy"},
		{"unknown code lowercased", "Q", "q"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.code))
		})
	}
}

func TestDenormalize(t *testing.T) {
	tests := []struct {
		name     string
		cabin    string
		expected string
	}{
		{"basic economy", "basic_economy", "N"},
		{"economy", "economy", "Y"},
		{"business", "business", "J"},
		{"first", "first", "F"},
		{"premium economy", "premium_economy", "W"},
		{"unknown passes through", "suite", "suite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Denormalize(tt.cabin))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, code := range []string{"N", "Y", "J", "F", "W"} {
		assert.Equal(t, code, Denormalize(Normalize(code)))
	}
}
