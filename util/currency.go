package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyBySuffix maps exchange ticker suffixes to their trading currency.
// Used when the chart meta block omits the currency.
var currencyBySuffix = map[string]string{
	".DE": "EUR", ".F": "EUR", ".L": "GBP", ".PA": "EUR", ".AS": "EUR",
	".MI": "EUR", ".MC": "EUR", ".T": "JPY", ".HK": "HKD", ".SS": "CNY",
	".SZ": "CNY", ".BO": "INR", ".NS": "INR", ".AX": "AUD", ".KS": "KRW",
	".TW": "TWD", ".SI": "SGD", ".JK": "IDR", ".BK": "THB", ".TO": "CAD",
	".SA": "BRL", ".MX": "MXN", ".SW": "CHF",
}

var currencySymbols = map[string]string{
	"USD": "$", "EUR": "€", "GBP": "£", "JPY": "¥", "CNY": "¥",
	"INR": "₹", "AUD": "A$", "CAD": "C$", "CHF": "₣", "HKD": "HK$",
	"SGD": "S$", "KRW": "₩", "TWD": "NT$", "IDR": "Rp", "THB": "฿",
	"BRL": "R$", "MXN": "MX$",
}

// zeroDecimalCurrencies are quoted without fractional units.
var zeroDecimalCurrencies = map[string]bool{"JPY": true, "KRW": true, "IDR": true}

// ResolveCurrency picks the display currency: chart meta first, then the
// ticker suffix map, then USD.
func ResolveCurrency(ticker, metaCurrency string) string {
	if metaCurrency != "" {
		return strings.ToUpper(metaCurrency)
	}
	upper := strings.ToUpper(ticker)
	for suffix, currency := range currencyBySuffix {
		if strings.HasSuffix(upper, suffix) {
			return currency
		}
	}
	return "USD"
}

// CurrencySymbol returns the display prefix for a currency code. Unknown
// codes fall back to the code itself plus a space.
func CurrencySymbol(currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol
	}
	return currency + " "
}

// FormatPrice renders a price with its currency symbol and thousands
// grouping; zero-decimal currencies drop the fraction.
func FormatPrice(price float64, currency string) string {
	places := int32(2)
	if zeroDecimalCurrencies[currency] {
		places = 0
	}
	return CurrencySymbol(currency) + groupThousands(decimal.NewFromFloat(price).StringFixed(places))
}

// FormatAmount renders a bare number with thousands grouping and no symbol.
func FormatAmount(value float64, places int32) string {
	return groupThousands(decimal.NewFromFloat(value).StringFixed(places))
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + fracPart
}
