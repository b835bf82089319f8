package number

import (
	"github.com/shopspring/decimal"
)

func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// NonNegative clamps nothing; it only reports whether d can be used as an
// unsigned balance.
func NonNegative(d decimal.Decimal) bool {
	return d.Sign() >= 0
}
