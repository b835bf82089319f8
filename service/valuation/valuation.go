package valuation

import (
	"context"

	"synth/core"

	"github.com/shopspring/decimal"
)

type valuationService struct {
	system   *core.System
	priceSrv core.IPriceOracleService
}

// New new valuation service
func New(system *core.System, priceSrv core.IPriceOracleService) core.IValuationService {
	return &valuationService{
		system:   system,
		priceSrv: priceSrv,
	}
}

func (s *valuationService) ValueInUSD(ctx context.Context, assetID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !s.system.IsListed(assetID) {
		return decimal.Zero, core.ErrAssetNotListed
	}

	price, err := s.priceSrv.Price(ctx, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	return amount.Mul(price).Truncate(core.ComputePrecision), nil
}

func (s *valuationService) AmountFromUSD(ctx context.Context, assetID string, usd decimal.Decimal) (decimal.Decimal, error) {
	if !s.system.IsListed(assetID) {
		return decimal.Zero, core.ErrAssetNotListed
	}

	price, err := s.priceSrv.Price(ctx, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	if price.Sign() <= 0 {
		return decimal.Zero, core.ErrInvalidPrice
	}

	return usd.DivRound(price, core.ComputePrecision+1).Truncate(core.ComputePrecision), nil
}
