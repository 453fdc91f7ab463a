package helper

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a checkout amount for display, e.g. "5,000 XOF".
func FormatAmount(amount float64, currency string) string {
	return amountPrinter.Sprintf("%v %s", number.Decimal(amount), currency)
}

// AmountValue renders an amount the way it round-trips through a form field,
// without grouping separators or trailing zeroes.
func AmountValue(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
