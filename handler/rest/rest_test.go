package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"synth/core"
	"synth/handler/views"
	"synth/pkg/number"
	"synth/service/solvency"
	"synth/service/valuation"
	vaultstore "synth/store/vault"

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

type memPriceStore struct {
	core.IPriceStore
	rows []*core.Price
}

func (s *memPriceStore) List(ctx context.Context, assetID string, limit int) ([]*core.Price, error) {
	var prices []*core.Price
	for _, row := range s.rows {
		if row.AssetID == assetID {
			prices = append(prices, row)
		}
	}

	return prices, nil
}

func (s *memPriceStore) Latest(ctx context.Context, assetID string) (*core.Price, error) {
	for idx := len(s.rows) - 1; idx >= 0; idx-- {
		if s.rows[idx].AssetID == assetID {
			return s.rows[idx], nil
		}
	}

	return nil, core.ErrAssetNotListed
}

func newTestHandler(t *testing.T) http.Handler {
	ctx := context.Background()

	cfg := &core.Config{Admins: []string{"ops"}}

	system, err := core.NewSystem("engine",
		[]*core.Asset{{AssetID: "eth", Symbol: "ETH"}},
		[]core.PriceFeed{nil},
	)
	require.Nil(t, err)

	vaults := vaultstore.New()
	require.Nil(t, vaults.Deposit(ctx, "alice", "eth", number.Decimal("10")))
	require.Nil(t, vaults.AddDebt(ctx, "alice", number.Decimal("1000")))

	prices := &fixedPriceService{prices: map[string]decimal.Decimal{"eth": number.Decimal("2000")}}
	valuationSrv := valuation.New(system, prices)
	solvencySrv := solvency.New(system, vaults, valuationSrv)

	priceStore := &memPriceStore{rows: []*core.Price{
		{AssetID: "eth", Price: number.Decimal("1990"), PulledAt: time.Now().Add(-time.Minute)},
		{AssetID: "eth", Price: number.Decimal("2000"), PulledAt: time.Now()},
	}}

	return Handle(cfg, system, vaults, solvencySrv, valuationSrv, nil, priceStore)
}

func TestVaultsEndpointForbidsNonAdmins(t *testing.T) {
	h := newTestHandler(t)

	r := httptest.NewRecorder()
	h.ServeHTTP(r, httptest.NewRequest("GET", "/vaults?user=alice", nil))
	assert.Equal(t, http.StatusForbidden, r.Code)
}

func TestVaultsEndpointListsForAdmins(t *testing.T) {
	h := newTestHandler(t)

	r := httptest.NewRecorder()
	h.ServeHTTP(r, httptest.NewRequest("GET", "/vaults?user=ops", nil))
	require.Equal(t, http.StatusOK, r.Code)

	var items []*views.Vault
	require.Nil(t, json.Unmarshal(r.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "alice", items[0].UserID)
	assert.Equal(t, "20000", items[0].CollateralValue.String())
	assert.Equal(t, "10", items[0].HealthFactor)
}

func TestPriceEndpoints(t *testing.T) {
	h := newTestHandler(t)

	r := httptest.NewRecorder()
	h.ServeHTTP(r, httptest.NewRequest("GET", "/prices/eth", nil))
	require.Equal(t, http.StatusOK, r.Code)

	var rows []*core.Price
	require.Nil(t, json.Unmarshal(r.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)

	r = httptest.NewRecorder()
	h.ServeHTTP(r, httptest.NewRequest("GET", "/prices/eth/latest", nil))
	require.Equal(t, http.StatusOK, r.Code)

	var latest core.Price
	require.Nil(t, json.Unmarshal(r.Body.Bytes(), &latest))
	assert.Equal(t, "2000", latest.Price.String())

	r = httptest.NewRecorder()
	h.ServeHTTP(r, httptest.NewRequest("GET", "/prices/btc/latest", nil))
	assert.Equal(t, http.StatusNotFound, r.Code)
}
