package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// IValuationService converts between asset amounts and USD values through the
// oracle. AmountFromUSD is the inverse of ValueInUSD up to truncation at
// ComputePrecision.
type IValuationService interface {
	ValueInUSD(ctx context.Context, assetID string, amount decimal.Decimal) (decimal.Decimal, error)
	AmountFromUSD(ctx context.Context, assetID string, usd decimal.Decimal) (decimal.Decimal, error)
}
