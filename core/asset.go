package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Asset a listed collateral asset
type Asset struct {
	AssetID string `json:"asset_id" yaml:"asset_id"`
	Symbol  string `json:"symbol" yaml:"symbol"`
}

// CollateralToken is the fungible-token collaborator of a collateral asset.
// A non-nil error means the transfer did not happen; the engine rolls the
// whole operation back.
type CollateralToken interface {
	Transfer(ctx context.Context, to string, amount decimal.Decimal) error
	TransferFrom(ctx context.Context, from, to string, amount decimal.Decimal) error
	BalanceOf(ctx context.Context, user string) (decimal.Decimal, error)
}
