package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Vault 抵押借贷账户
type Vault struct {
	UserID string `json:"user_id"`
	// 每种抵押资产的余额
	Collaterals map[string]decimal.Decimal `json:"collaterals"`
	Debt        decimal.Decimal            `json:"debt"`
}

// VaultSnapshot a copy of one vault's state, used to undo a failed operation
type VaultSnapshot struct {
	UserID      string
	Collaterals map[string]decimal.Decimal
	Debt        decimal.Decimal
}

// IVaultStore is the position ledger. Mutations are the only way vault state
// changes; the store never checks solvency, that belongs to the solvency
// service. Vaults come into existence on first mutation.
type IVaultStore interface {
	Deposit(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	// Withdraw fails with ErrInsufficientCollateral when amount exceeds the balance
	Withdraw(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	AddDebt(ctx context.Context, userID string, amount decimal.Decimal) error
	// ReduceDebt fails with ErrInsufficientDebt when amount exceeds the debt
	ReduceDebt(ctx context.Context, userID string, amount decimal.Decimal) error

	Find(ctx context.Context, userID string) (*Vault, error)
	CollateralOf(ctx context.Context, userID, assetID string) (decimal.Decimal, error)
	DebtOf(ctx context.Context, userID string) (decimal.Decimal, error)
	Users(ctx context.Context) ([]string, error)

	Snapshot(ctx context.Context, userID string) (*VaultSnapshot, error)
	Restore(ctx context.Context, snapshot *VaultSnapshot) error
}
