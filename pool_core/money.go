package pool_core

import "github.com/shopspring/decimal"

const MoneyPlaces int32 = 2

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds half away from zero to cents.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// Percent returns part/whole*100 rounded to cents, zero when whole is zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole).Round(MoneyPlaces)
}

// ValidMoney reports whether d is a positive amount with at most 2 decimal places.
func ValidMoney(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Round(MoneyPlaces))
}
