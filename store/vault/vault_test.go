package vault

import (
	"context"
	"testing"

	"synth/core"
	"synth/pkg/number"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositWithdraw(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.Nil(t, s.Deposit(ctx, "alice", "btc", number.Decimal("1.5")))
	require.Nil(t, s.Deposit(ctx, "alice", "btc", number.Decimal("0.5")))

	balance, err := s.CollateralOf(ctx, "alice", "btc")
	require.Nil(t, err)
	assert.Equal(t, "2", balance.String())

	err = s.Withdraw(ctx, "alice", "btc", number.Decimal("2.00000001"))
	assert.Equal(t, core.ErrInsufficientCollateral, err)

	require.Nil(t, s.Withdraw(ctx, "alice", "btc", number.Decimal("2")))
	balance, err = s.CollateralOf(ctx, "alice", "btc")
	require.Nil(t, err)
	assert.True(t, balance.IsZero())
}

func TestDebt(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.Nil(t, s.AddDebt(ctx, "bob", number.Decimal("100")))

	err := s.ReduceDebt(ctx, "bob", number.Decimal("100.1"))
	assert.Equal(t, core.ErrInsufficientDebt, err)

	require.Nil(t, s.ReduceDebt(ctx, "bob", number.Decimal("100")))
	debt, err := s.DebtOf(ctx, "bob")
	require.Nil(t, err)
	assert.True(t, debt.IsZero())
}

func TestUnknownVaultReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	s := New()

	v, err := s.Find(ctx, "nobody")
	require.Nil(t, err)
	assert.True(t, v.Debt.IsZero())
	assert.Len(t, v.Collaterals, 0)

	debt, err := s.DebtOf(ctx, "nobody")
	require.Nil(t, err)
	assert.True(t, debt.IsZero())
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.Nil(t, s.Deposit(ctx, "carol", "eth", number.Decimal("10")))
	require.Nil(t, s.AddDebt(ctx, "carol", number.Decimal("1000")))

	snapshot, err := s.Snapshot(ctx, "carol")
	require.Nil(t, err)

	require.Nil(t, s.Withdraw(ctx, "carol", "eth", number.Decimal("4")))
	require.Nil(t, s.ReduceDebt(ctx, "carol", number.Decimal("400")))

	require.Nil(t, s.Restore(ctx, snapshot))

	balance, err := s.CollateralOf(ctx, "carol", "eth")
	require.Nil(t, err)
	assert.Equal(t, "10", balance.String())

	debt, err := s.DebtOf(ctx, "carol")
	require.Nil(t, err)
	assert.Equal(t, "1000", debt.String())
}

func TestRejectNegativeAmounts(t *testing.T) {
	ctx := context.Background()
	s := New()

	assert.Equal(t, core.ErrInvalidAmount, s.Deposit(ctx, "dave", "btc", number.Decimal("-1")))
	assert.Equal(t, core.ErrInvalidAmount, s.AddDebt(ctx, "dave", number.Decimal("-1")))
}
