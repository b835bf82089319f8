package oracle

import (
	"context"
	"fmt"
	"time"

	"synth/core"
	"synth/pkg/resthttp"

	"github.com/shopspring/decimal"
)

// tickerFeed adapts the oracle HTTP endpoint into a core.PriceFeed. The
// endpoint serves human-scale prices; readings go out in the feed's native
// 8-decimal integer scale.
type tickerFeed struct {
	endpoint string
	assetID  string
}

// NewTickerFeed new price feed backed by the oracle endpoint
func NewTickerFeed(endpoint, assetID string) core.PriceFeed {
	return &tickerFeed{
		endpoint: endpoint,
		assetID:  assetID,
	}
}

func (f *tickerFeed) AssetID() string {
	return f.assetID
}

func (f *tickerFeed) LatestPrice(ctx context.Context) (decimal.Decimal, int32, error) {
	url := fmt.Sprintf("%s/api/v2/tickers/%s?ts=%d", f.endpoint, f.assetID, time.Now().UTC().Unix())
	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return decimal.Zero, core.FeedDecimals, err
	}

	var ticker core.PriceTicker
	if err := resthttp.ParseResponse(resp, &ticker); err != nil {
		return decimal.Zero, core.FeedDecimals, err
	}

	raw := ticker.Price.Shift(core.FeedDecimals).Truncate(0)
	return raw, core.FeedDecimals, nil
}
