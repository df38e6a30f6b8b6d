package contract

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	argentineSpanish = language.MustParse("es-AR")
	usEnglish        = language.AmericanEnglish
)

// FormatMoney renders an amount for display. Pesos use Argentine grouping
// with two decimals behind a "$" sign; dollars get an explicit "USD" prefix
// and US grouping.
func FormatMoney(amount float64, c Currency) string {
	if c == CurrencyUSD {
		return "USD " + message.NewPrinter(usEnglish).Sprint(number.Decimal(amount))
	}

	return "$ " + message.NewPrinter(argentineSpanish).Sprint(number.Decimal(amount, number.Scale(2)))
}
