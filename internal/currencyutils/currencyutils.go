// Package currencyutils is the single conversion and formatting boundary for
// display currencies. All stored amounts are in one implicit base unit (USD);
// conversion through the static rate table happens only when an amount is
// rendered. Nothing outside this package scales amounts by a rate.
package currencyutils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Info describes one supported display currency.
type Info struct {
	Symbol string
	Name   string
}

// Currencies is the static table of supported display currencies.
var Currencies = map[string]Info{
	"USD": {Symbol: "$", Name: "US Dollar"},
	"EUR": {Symbol: "€", Name: "Euro"},
	"GBP": {Symbol: "£", Name: "British Pound"},
	"JPY": {Symbol: "¥", Name: "Japanese Yen"},
	"INR": {Symbol: "₹", Name: "Indian Rupee"},
}

// rates holds static base-unit-to-display rates. These are fixed lookup
// values, not market data; conversion correctness is out of scope.
var rates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"EUR": decimal.RequireFromString("0.92"),
	"GBP": decimal.RequireFromString("0.79"),
	"JPY": decimal.RequireFromString("157.0"),
	"INR": decimal.RequireFromString("83.5"),
}

// IsSupported reports whether code is a known display currency.
func IsSupported(code string) bool {
	_, ok := Currencies[strings.ToUpper(code)]
	return ok
}

// Rate returns the display rate for a currency code, falling back to 1 for
// unknown codes so an odd code degrades to base-unit display.
func Rate(code string) decimal.Decimal {
	if r, ok := rates[strings.ToUpper(code)]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// Symbol returns the currency symbol, falling back to "$".
func Symbol(code string) string {
	if info, ok := Currencies[strings.ToUpper(code)]; ok {
		return info.Symbol
	}
	return "$"
}

// Convert scales a base-unit amount into the display currency.
func Convert(amount decimal.Decimal, code string) decimal.Decimal {
	return amount.Mul(Rate(code))
}

// Format renders a base-unit amount in the display currency with two decimal
// places, e.g. "₹1234.56".
func Format(amount decimal.Decimal, code string) string {
	return Symbol(code) + Convert(amount, code).StringFixed(2)
}

// FormatWhole renders a base-unit amount in the display currency with no
// decimal places, for overview tiles.
func FormatWhole(amount decimal.Decimal, code string) string {
	return Symbol(code) + Convert(amount, code).StringFixed(0)
}
