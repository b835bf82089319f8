package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// DebtToken is the pegged debt token collaborator. Calls are synchronous and
// possibly failing; the engine treats any error as a full-operation failure.
type DebtToken interface {
	Mint(ctx context.Context, to string, amount decimal.Decimal) error
	Burn(ctx context.Context, from string, amount decimal.Decimal) error
	TransferFrom(ctx context.Context, from, to string, amount decimal.Decimal) error
	BalanceOf(ctx context.Context, user string) (decimal.Decimal, error)
	TotalSupply(ctx context.Context) (decimal.Decimal, error)
}
