// Package money formats decimal amounts for display on invoices and in the
// terminal UI.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount with grouped thousands and exactly two decimal
// places, e.g. 1234.5 -> "1,234.50".
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()

	return printer.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
