package core

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopFeed struct {
	assetID string
}

func (f *nopFeed) AssetID() string {
	return f.assetID
}

func (f *nopFeed) LatestPrice(ctx context.Context) (decimal.Decimal, int32, error) {
	return decimal.Zero, FeedDecimals, nil
}

func TestNewSystem(t *testing.T) {
	assets := []*Asset{
		{AssetID: "eth", Symbol: "ETH"},
		{AssetID: "btc", Symbol: "BTC"},
	}
	feeds := []PriceFeed{
		&nopFeed{assetID: "eth"},
		&nopFeed{assetID: "btc"},
	}

	system, err := NewSystem("client", assets, feeds)
	require.Nil(t, err)

	assert.Len(t, system.Assets(), 2)
	assert.True(t, system.IsListed("eth"))
	assert.False(t, system.IsListed("doge"))

	a, ok := system.Asset("btc")
	require.True(t, ok)
	assert.Equal(t, "BTC", a.Symbol)

	f, ok := system.Feed("eth")
	require.True(t, ok)
	assert.Equal(t, "eth", f.AssetID())

	_, ok = system.Feed("doge")
	assert.False(t, ok)
}

func TestNewSystemFeedMismatch(t *testing.T) {
	assets := []*Asset{{AssetID: "eth", Symbol: "ETH"}}

	_, err := NewSystem("client", assets, nil)
	assert.NotNil(t, err)
}
