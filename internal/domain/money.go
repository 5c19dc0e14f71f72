package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round2 rounds to 2 decimal places, half away from zero
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PercentOf returns part/whole*100 rounded to 2 decimal places.
// A zero whole yields exactly zero instead of an error.
func PercentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return Round2(part.Div(whole).Mul(hundred))
}

// PercentChange returns the percentage change from 'from' to 'to', with the
// same zero guard as PercentOf
func PercentChange(from, to decimal.Decimal) decimal.Decimal {
	return PercentOf(to.Sub(from), from)
}
