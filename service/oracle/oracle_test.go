package oracle

import (
	"context"
	"testing"
	"time"

	"synth/core"
	"synth/pkg/number"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticFeed struct {
	assetID string
	raw     decimal.Decimal
	err     error
}

func (f *staticFeed) AssetID() string { return f.assetID }

func (f *staticFeed) LatestPrice(ctx context.Context) (decimal.Decimal, int32, error) {
	return f.raw, core.FeedDecimals, f.err
}

func newTestSystem(t *testing.T, feeds ...core.PriceFeed) *core.System {
	assets := make([]*core.Asset, len(feeds))
	for idx, f := range feeds {
		assets[idx] = &core.Asset{AssetID: f.AssetID(), Symbol: f.AssetID()}
	}

	system, err := core.NewSystem("engine", assets, feeds)
	require.Nil(t, err)
	return system
}

func TestNormalize(t *testing.T) {
	// a 2000 USD price arrives as 2000e8
	raw := number.Decimal("200000000000")
	assert.Equal(t, "2000", Normalize(raw).String())
	assert.Equal(t, raw.String(), Denormalize(Normalize(raw)).String())
}

func TestPrice(t *testing.T) {
	ctx := context.Background()
	system := newTestSystem(t, &staticFeed{assetID: "eth", raw: number.Decimal("200000000000")})
	srv := New(system, &core.Config{})

	price, err := srv.Price(ctx, "eth")
	require.Nil(t, err)
	assert.Equal(t, "2000", price.String())

	_, err = srv.Price(ctx, "doge")
	assert.Equal(t, core.ErrAssetNotListed, err)
}

func TestPriceUnavailable(t *testing.T) {
	ctx := context.Background()
	system := newTestSystem(t, &staticFeed{assetID: "eth", err: core.ErrUnknown})
	srv := New(system, &core.Config{})

	_, err := srv.Price(ctx, "eth")
	assert.Equal(t, core.ErrOracleUnavailable, err)
}

func TestCachedPrice(t *testing.T) {
	ctx := context.Background()
	feed := &staticFeed{assetID: "eth", raw: number.Decimal("200000000000")}
	system := newTestSystem(t, feed)
	srv := Cache(New(system, &core.Config{}), time.Minute)

	price, err := srv.Price(ctx, "eth")
	require.Nil(t, err)
	assert.Equal(t, "2000", price.String())

	// served from cache even after the feed moves
	feed.raw = number.Decimal("300000000000")
	price, err = srv.Price(ctx, "eth")
	require.Nil(t, err)
	assert.Equal(t, "2000", price.String())
}
