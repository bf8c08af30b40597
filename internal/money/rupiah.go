// Package money renders rupiah amounts for customer-facing text.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Rupiah formats an amount as Indonesian currency text, e.g. 15000 -> "Rp15.000".
// Rupiah has no fractional digits in practice, so amounts are whole numbers.
func Rupiah(amount int64) string {
	if amount < 0 {
		return "-" + Rupiah(-amount)
	}
	return printer.Sprintf("Rp%d", amount)
}
