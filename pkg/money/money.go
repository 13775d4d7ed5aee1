// Package money formats rupee amounts the way the scheme's statements print them:
// Indian digit grouping (3,65,000) and Lakh/Crore abbreviations.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// Rupee is the display symbol for terminal and HTML output
	Rupee = "₹"
	// RupeeASCII replaces the symbol where the font lacks the glyph (PDF core fonts)
	RupeeASCII = "Rs."
)

var (
	lakh  = decimal.NewFromInt(100000)
	crore = decimal.NewFromInt(10000000)
)

// GroupIndian inserts Indian-style separators into a string of digits:
// the last three digits form one group and every two digits before that another.
func GroupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// FormatWithSymbol rounds to whole rupees and groups the digits
func FormatWithSymbol(d decimal.Decimal, symbol string) string {
	rounded := d.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + symbol + GroupIndian(rounded.String())
}

// FormatINR formats an amount as ₹3,65,000
func FormatINR(d decimal.Decimal) string {
	return FormatWithSymbol(d, Rupee)
}

// FormatLakhCroreWithSymbol abbreviates amounts of a lakh or more
func FormatLakhCroreWithSymbol(d decimal.Decimal, symbol string) string {
	abs := d.Abs()
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.GreaterThanOrEqual(crore):
		return sign + symbol + abs.Div(crore).StringFixed(2) + " Cr"
	case abs.GreaterThanOrEqual(lakh):
		return sign + symbol + abs.Div(lakh).StringFixed(2) + " L"
	default:
		return FormatWithSymbol(d, symbol)
	}
}

// FormatLakhCrore formats an amount as ₹3.65 L or ₹1.20 Cr
func FormatLakhCrore(d decimal.Decimal) string {
	return FormatLakhCroreWithSymbol(d, Rupee)
}

// Signed prefixes positive amounts with + so deltas read naturally
func Signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + FormatINR(d)
	}
	return FormatINR(d)
}

// Percent renders a percentage value with two decimals
func Percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
