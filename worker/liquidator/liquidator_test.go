package liquidator

import (
	"context"
	"testing"

	"synth/core"
	"synth/pkg/number"
	"synth/service/solvency"
	"synth/service/valuation"
	"synth/store/vault"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPriceService struct {
	core.IPriceOracleService
	prices map[string]decimal.Decimal
}

func (s *fixedPriceService) Price(ctx context.Context, assetID string) (decimal.Decimal, error) {
	price, ok := s.prices[assetID]
	if !ok {
		return decimal.Zero, core.ErrOracleUnavailable
	}

	return price, nil
}

func TestScan(t *testing.T) {
	ctx := context.Background()

	system, err := core.NewSystem("engine", []*core.Asset{{AssetID: "eth", Symbol: "ETH"}}, []core.PriceFeed{nil})
	require.Nil(t, err)

	vaults := vault.New()
	prices := &fixedPriceService{prices: map[string]decimal.Decimal{"eth": number.Decimal("2000")}}
	solvencySrv := solvency.New(system, vaults, valuation.New(system, prices))

	// healthy: 10 * 2000 * 50% / 1000 = 10
	require.Nil(t, vaults.Deposit(ctx, "alice", "eth", number.Decimal("10")))
	require.Nil(t, vaults.AddDebt(ctx, "alice", number.Decimal("1000")))

	// broken: 1 * 2000 * 50% / 2000 = 0.5
	require.Nil(t, vaults.Deposit(ctx, "bob", "eth", number.Decimal("1")))
	require.Nil(t, vaults.AddDebt(ctx, "bob", number.Decimal("2000")))

	// no debt at all
	require.Nil(t, vaults.Deposit(ctx, "carol", "eth", number.Decimal("0.1")))

	w := &Worker{
		vaultStore:  vaults,
		solvencySrv: solvencySrv,
	}

	users, err := vaults.Users(ctx)
	require.Nil(t, err)

	candidates, err := w.Scan(ctx, users)
	require.Nil(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "bob", candidates[0].UserID)
	assert.Equal(t, "0.5", candidates[0].HealthFactor.Value.String())
	assert.Equal(t, "2000", candidates[0].Debt)
}
