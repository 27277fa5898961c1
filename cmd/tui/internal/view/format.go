package view

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/villagekitchen/billing/internal/money"
)

// FormatAmount formats a decimal amount with the given currency label.
func FormatAmount(label string, d decimal.Decimal) string {
	return label + " " + money.Format(d)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
