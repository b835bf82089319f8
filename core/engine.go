package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// ICollateralEngine orchestrates every state-changing operation over the
// vault ledger. Each operation is atomic: on any failure the ledger is left
// exactly as it was, and collaborator side effects are issued only after the
// ledger has fully settled.
type ICollateralEngine interface {
	DepositCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	MintDebt(ctx context.Context, userID string, amount decimal.Decimal) error
	BurnDebt(ctx context.Context, userID string, amount decimal.Decimal) error
	RedeemCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error

	DepositAndMint(ctx context.Context, userID, assetID string, depositAmount, mintAmount decimal.Decimal) error
	RedeemForDebt(ctx context.Context, userID, assetID string, burnAmount, redeemAmount decimal.Decimal) error

	// Liquidate lets liquidator repay debtToCover of a broken vault's debt in
	// exchange for a bonus-weighted slice of its collateral in the given asset.
	Liquidate(ctx context.Context, liquidator, userID, assetID string, debtToCover decimal.Decimal) error
}
