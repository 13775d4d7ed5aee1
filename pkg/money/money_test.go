package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGroupIndian(t *testing.T) {
	tests := map[string]string{
		"0":         "0",
		"999":       "999",
		"1000":      "1,000",
		"365000":    "3,65,000",
		"1250000":   "12,50,000",
		"12000000":  "1,20,00,000",
		"123456789": "12,34,56,789",
	}
	for in, want := range tests {
		assert.Equal(t, want, GroupIndian(in), in)
	}
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹3,65,000", FormatINR(decimal.NewFromInt(365000)))
	assert.Equal(t, "-₹1,250", FormatINR(decimal.NewFromInt(-1250)))
	assert.Equal(t, "₹0", FormatINR(decimal.Zero))
	assert.Equal(t, "Rs.9,000", FormatWithSymbol(decimal.NewFromInt(9000), RupeeASCII))
}

func TestFormatLakhCrore(t *testing.T) {
	assert.Equal(t, "₹3.65 L", FormatLakhCrore(decimal.NewFromInt(365000)))
	assert.Equal(t, "₹1.20 Cr", FormatLakhCrore(decimal.NewFromInt(12000000)))
	assert.Equal(t, "₹99,999", FormatLakhCrore(decimal.NewFromInt(99999)))
	assert.Equal(t, "-₹2.50 L", FormatLakhCrore(decimal.NewFromInt(-250000)))
}

func TestSignedAndPercent(t *testing.T) {
	assert.Equal(t, "+₹15,000", Signed(decimal.NewFromInt(15000)))
	assert.Equal(t, "-₹15,000", Signed(decimal.NewFromInt(-15000)))
	assert.Equal(t, "42.50%", Percent(decimal.RequireFromString("42.5")))
}
