package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		name     string
		amount   string
		places   int
		expected string
	}{
		{"no separator needed", "999.5", 2, "999.50"},
		{"single separator", "1500", 2, "1,500.00"},
		{"multiple separators", "1234567.5", 2, "1,234,567.50"},
		{"exact group boundary", "100000", 2, "100,000.00"},
		{"zero places", "1234567", 0, "1,234,567"},
		{"rounds to places", "100.255", 2, "100.26"},
		{"negative amount", "-1234.5", 2, "-1,234.50"},
		{"small fraction", "0.5", 2, "0.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			assert.Equal(t, tc.expected, FormatAmount(amount, tc.places))
		})
	}
}

func TestFormatTierTotal(t *testing.T) {
	t.Run("zero total is the literal integer zero", func(t *testing.T) {
		assert.Equal(t, 0, FormatTierTotal(decimal.Zero, 2, " SGD"))
	})

	t.Run("nonzero total carries the suffix", func(t *testing.T) {
		total := decimal.RequireFromString("1500")
		assert.Equal(t, "1,500.00 SGD", FormatTierTotal(total, 2, " SGD"))
	})

	t.Run("empty suffix", func(t *testing.T) {
		total := decimal.RequireFromString("100")
		assert.Equal(t, "100.00", FormatTierTotal(total, 2, ""))
	})
}
