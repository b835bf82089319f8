package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PriceFeed reports the latest raw reading of one asset's price feed. The
// reading is an integer value scaled by decimals (e.g. 2000 USD with 8
// decimals arrives as 2000e8). Feeds are trusted to be fresh; the engine has
// no staleness policy.
type PriceFeed interface {
	AssetID() string
	LatestPrice(ctx context.Context) (price decimal.Decimal, decimals int32, err error)
}

// PriceTicker price ticker from the oracle endpoint
type PriceTicker struct {
	AssetID string          `json:"asset_id"`
	Symbol  string          `json:"symbol"`
	Price   decimal.Decimal `json:"price"`
}

// IPriceOracleService normalizes feed readings onto the value scale
type IPriceOracleService interface {
	// Price returns the USD price of one unit of the asset, normalized from
	// the feed's native scale onto the value scale
	Price(ctx context.Context, assetID string) (decimal.Decimal, error)
	PullPriceTicker(ctx context.Context, assetID string, t time.Time) (*PriceTicker, error)
	PullAllPriceTickers(ctx context.Context, t time.Time) ([]*PriceTicker, error)
}
