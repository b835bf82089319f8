package oracle

import (
	"context"
	"fmt"
	"time"

	"synth/core"
	"synth/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// priceService normalizes raw feed readings onto the value scale and pulls
// tickers from the oracle endpoint. Feeds are trusted-fresh; no staleness
// window is considered.
type priceService struct {
	system *core.System
	config *core.Config
}

// New new oracle price service
func New(system *core.System, config *core.Config) core.IPriceOracleService {
	return &priceService{
		system: system,
		config: config,
	}
}

func (s *priceService) Price(ctx context.Context, assetID string) (decimal.Decimal, error) {
	feed, ok := s.system.Feed(assetID)
	if !ok {
		return decimal.Zero, core.ErrAssetNotListed
	}

	raw, _, err := feed.LatestPrice(ctx)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("oracle: latest price", assetID)
		return decimal.Zero, core.ErrOracleUnavailable
	}

	price := Normalize(raw)
	if price.Sign() <= 0 {
		return decimal.Zero, core.ErrInvalidPrice
	}

	return price, nil
}

// Normalize converts a raw feed reading (an integer scaled by the feed's 8
// decimals) to USD per unit: raw * 1e10 / 1e18 on the value scale.
func Normalize(raw decimal.Decimal) decimal.Decimal {
	return raw.Shift(core.OracleScaleAdjust - core.ValuePrecision)
}

// Denormalize is the inverse, back to the feed's native scale.
func Denormalize(price decimal.Decimal) decimal.Decimal {
	return price.Shift(core.ValuePrecision - core.OracleScaleAdjust)
}

// PullPriceTicker pull price ticker
func (s *priceService) PullPriceTicker(ctx context.Context, assetID string, t time.Time) (*core.PriceTicker, error) {
	url := fmt.Sprintf("%s/api/v2/tickers/%s?ts=%d", s.config.PriceOracle.EndPoint, assetID, t.UTC().Unix())
	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	var ticker core.PriceTicker
	if err := resthttp.ParseResponse(resp, &ticker); err != nil {
		return nil, err
	}

	return &ticker, nil
}

// PullAllPriceTickers pull all price tickers
func (s *priceService) PullAllPriceTickers(ctx context.Context, t time.Time) ([]*core.PriceTicker, error) {
	url := fmt.Sprintf("%s/api/tickers?ts=%d", s.config.PriceOracle.EndPoint, t.UTC().Unix())
	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	var tickers []*core.PriceTicker
	if err := resthttp.ParseResponse(resp, &tickers); err != nil {
		return nil, err
	}

	return tickers, nil
}
