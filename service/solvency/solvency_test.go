package solvency

import (
	"context"
	"testing"

	"synth/core"
	"synth/pkg/number"
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

func newService(t *testing.T, prices map[string]string) (core.ISolvencyService, core.IVaultStore) {
	fixed := &fixedPriceService{prices: make(map[string]decimal.Decimal)}
	var assets []*core.Asset
	var feeds []core.PriceFeed
	for assetID, price := range prices {
		fixed.prices[assetID] = number.Decimal(price)
		assets = append(assets, &core.Asset{AssetID: assetID, Symbol: assetID})
		feeds = append(feeds, nil)
	}

	system, err := core.NewSystem("engine", assets, feeds)
	require.Nil(t, err)

	vaults := vault.New()
	return New(system, vaults, valuation.New(system, fixed)), vaults
}

func TestHealthFactorUnconstrainedWithoutDebt(t *testing.T) {
	ctx := context.Background()
	srv, vaults := newService(t, map[string]string{"eth": "2000"})

	// no vault at all
	factor, err := srv.HealthFactor(ctx, "alice")
	require.Nil(t, err)
	assert.True(t, factor.Unconstrained)

	// collateral but no debt
	require.Nil(t, vaults.Deposit(ctx, "alice", "eth", number.Decimal("10")))
	factor, err = srv.HealthFactor(ctx, "alice")
	require.Nil(t, err)
	assert.True(t, factor.Unconstrained)
	assert.Nil(t, srv.CheckSolvency(ctx, "alice"))
}

func TestHealthFactor(t *testing.T) {
	ctx := context.Background()
	srv, vaults := newService(t, map[string]string{"eth": "2000"})

	require.Nil(t, vaults.Deposit(ctx, "alice", "eth", number.Decimal("10")))
	require.Nil(t, vaults.AddDebt(ctx, "alice", number.Decimal("1000")))

	// 10 * 2000 * 50% / 1000 = 10
	factor, err := srv.HealthFactor(ctx, "alice")
	require.Nil(t, err)
	assert.False(t, factor.Unconstrained)
	assert.Equal(t, "10", factor.Value.String())
	assert.Nil(t, srv.CheckSolvency(ctx, "alice"))
}

func TestHealthFactorBoundary(t *testing.T) {
	ctx := context.Background()
	srv, vaults := newService(t, map[string]string{"eth": "2000"})

	// 1 * 2000 * 50% / 1000 = 1.0 exactly: solvent, not broken
	require.Nil(t, vaults.Deposit(ctx, "alice", "eth", number.Decimal("1")))
	require.Nil(t, vaults.AddDebt(ctx, "alice", number.Decimal("1000")))

	factor, err := srv.HealthFactor(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, "1", factor.Value.String())
	assert.Nil(t, srv.CheckSolvency(ctx, "alice"))
}

func TestCheckSolvencyBroken(t *testing.T) {
	ctx := context.Background()
	srv, vaults := newService(t, map[string]string{"eth": "2000"})

	require.Nil(t, vaults.Deposit(ctx, "alice", "eth", number.Decimal("0.5")))
	require.Nil(t, vaults.AddDebt(ctx, "alice", number.Decimal("1000")))

	assert.Equal(t, core.ErrHealthFactorBroken, srv.CheckSolvency(ctx, "alice"))
}

func TestTotalCollateralValueMultiAsset(t *testing.T) {
	ctx := context.Background()
	srv, vaults := newService(t, map[string]string{
		"eth": "2000",
		"btc": "40000",
	})

	require.Nil(t, vaults.Deposit(ctx, "alice", "eth", number.Decimal("5")))
	require.Nil(t, vaults.Deposit(ctx, "alice", "btc", number.Decimal("0.5")))

	total, err := srv.TotalCollateralValue(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, "30000", total.String())
}
