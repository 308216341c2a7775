package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice_CompactIsDefault(t *testing.T) {
	assert.Equal(t, "$1.23K", FormatPrice(1234, Options{}))
	assert.Equal(t, "$1.23M", FormatPrice(1234567, Options{}))
	assert.Equal(t, "$2.5B", FormatPrice(2.5e9, Options{}))
	assert.Equal(t, "$999", FormatPrice(999, Options{}))
	assert.Equal(t, "$0", FormatPrice(0, Options{}))
}

func TestFormatPrice_Standard(t *testing.T) {
	assert.Equal(t, "$1,234.50", FormatPrice(1234.5, Options{Notation: NotationStandard}))
	assert.Equal(t, "$9.99", FormatPrice(9.99, Options{Notation: NotationStandard}))
}

func TestFormatPrice_Negative(t *testing.T) {
	assert.Equal(t, "-$1.23K", FormatPrice(-1234, Options{}))
}

func TestFormatPrice_OtherCurrencies(t *testing.T) {
	assert.Equal(t, "€5", FormatPrice(5, Options{Currency: "eur"}))
	// Unmapped but valid ISO codes fall back to the code itself.
	assert.Equal(t, "JPY 500", FormatPrice(500, Options{Currency: "JPY"}))
}

func TestFormatPriceString(t *testing.T) {
	got, err := FormatPriceString("9.999", Options{})
	assert.NoError(t, err)
	assert.Equal(t, "$10", got)

	got, err = FormatPriceString(" 1234 ", Options{})
	assert.NoError(t, err)
	assert.Equal(t, "$1.23K", got)
}

func TestFormatPriceString_RejectsNonNumeric(t *testing.T) {
	_, err := FormatPriceString("not-a-price", Options{})
	assert.Error(t, err)

	_, err = FormatPriceString("NaN", Options{})
	assert.Error(t, err)
}
