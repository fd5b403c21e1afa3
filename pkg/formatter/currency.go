package formatter

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencyPrefix matches the browser's pt-BR currency output, which separates
// the symbol with a non-breaking space.
const currencyPrefix = "R$\u00a0"

// maxCurrencyDigits keeps the cents value exactly representable as float64.
const maxCurrencyDigits = 15

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// Currency reads the digits of s as a cents amount and renders it in reais
// with pt-BR grouping: "123456" becomes "R$ 1.234,56". Input without digits
// yields an empty string.
func Currency(s string) string {
	digits := strings.TrimLeft(Digits(s), "0")
	switch {
	case digits == "" && Digits(s) == "":
		return ""
	case digits == "":
		digits = "0"
	case len(digits) > maxCurrencyDigits:
		digits = digits[:maxCurrencyDigits]
	}

	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ""
	}

	amount := float64(cents) / 100
	return currencyPrefix + brPrinter.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
