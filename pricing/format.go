// Package pricing formats prices for display.
package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	NotationCompact  = "compact"
	NotationStandard = "standard"
)

// Options control currency and notation. Zero values mean USD and compact
// notation.
type Options struct {
	Currency string
	Notation string
}

// Narrow symbols for the currencies the storefront sells in. The x/text
// currency formatter renders ISO-code-prefixed amounts ("USD 12.34"), which
// is not the storefront's display style, so symbols are resolved here.
var narrowSymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
}

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders a price as a localized currency string with at most
// two fraction digits. Compact notation abbreviates thousands and above
// ("$1.23K").
func FormatPrice(price float64, opts Options) string {
	sym := symbolFor(opts.Currency)

	sign := ""
	if price < 0 {
		sign = "-"
		price = -price
	}

	if opts.Notation == NotationStandard {
		return sign + sym + printer.Sprintf("%v",
			number.Decimal(price,
				number.MinFractionDigits(2),
				number.MaxFractionDigits(2),
			))
	}

	scaled, suffix := compact(price)
	return sign + sym + printer.Sprintf("%v",
		number.Decimal(scaled, number.MaxFractionDigits(2)),
	) + suffix
}

// FormatPriceString parses a numeric string and formats it. Non-numeric
// input is an error rather than a propagated NaN.
func FormatPriceString(price string, opts Options) (string, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return "", fmt.Errorf("invalid price %q: %w", price, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("invalid price %q", price)
	}
	return FormatPrice(v, opts), nil
}

// symbolFor resolves the display symbol, validating the code through
// x/text. Unknown or unmapped currencies fall back to the ISO code.
func symbolFor(code string) string {
	if code == "" {
		code = "USD"
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return strings.ToUpper(code) + " "
	}
	if sym, ok := narrowSymbols[unit.String()]; ok {
		return sym
	}
	return unit.String() + " "
}

func compact(v float64) (float64, string) {
	switch {
	case v >= 1e12:
		return v / 1e12, "T"
	case v >= 1e9:
		return v / 1e9, "B"
	case v >= 1e6:
		return v / 1e6, "M"
	case v >= 1e3:
		return v / 1e3, "K"
	default:
		return v, ""
	}
}
