package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/villagekitchen/billing/internal/money"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   decimal.Decimal
		want string
	}{
		{name: "Zero", in: decimal.Zero, want: "0.00"},
		{name: "Whole", in: decimal.NewFromInt(150), want: "150.00"},
		{name: "Fraction", in: decimal.NewFromFloat(40.5), want: "40.50"},
		{name: "Grouped", in: decimal.NewFromFloat(1234.5), want: "1,234.50"},
		{name: "RoundsHalfUp", in: decimal.NewFromFloat(99.995), want: "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(tt.in))
		})
	}
}
