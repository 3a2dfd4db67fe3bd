package models

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatQuantity renders a quantity with four decimal places.
func FormatQuantity(q decimal.Decimal) string {
	return q.StringFixed(4)
}

// FormatUSD renders an amount as US dollars with thousands separators, e.g. $36,508.50.
func FormatUSD(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.USD)
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, money.USD).Display()
}
