package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// ValuePrecision decimal places of the internal USD value scale
	ValuePrecision int32 = 18
	// OracleScaleAdjust shift bridging an 8-decimal feed reading onto the value scale
	OracleScaleAdjust int32 = 10
	// FeedDecimals decimal places a price feed reports in
	FeedDecimals int32 = 8
	// ComputePrecision decimal places kept at computation boundaries
	ComputePrecision int32 = 16
)

var (
	// LiquidationThreshold percentage of collateral value counted toward solvency
	LiquidationThreshold = decimal.NewFromInt(50)
	// LiquidationPrecision denominator for threshold and bonus percentages
	LiquidationPrecision = decimal.NewFromInt(100)
	// LiquidationBonus percentage of the seized base awarded on top to the liquidator
	LiquidationBonus = decimal.NewFromInt(10)
	// MinHealthFactor minimum solvency ratio a vault with debt must keep
	MinHealthFactor = decimal.NewFromInt(1)
)

// System stores system information. The asset list and its feed bindings are
// fixed at construction and never change afterwards.
type System struct {
	ClientID string
	Location string
	Genesis  int64
	Version  string

	assets []*Asset
	feeds  map[string]PriceFeed
}

// NewSystem binds the ordered asset list to its ordered feed list.
func NewSystem(clientID string, assets []*Asset, feeds []PriceFeed) (*System, error) {
	if len(assets) != len(feeds) {
		return nil, fmt.Errorf("system: %d assets but %d price feeds", len(assets), len(feeds))
	}

	s := &System{
		ClientID: clientID,
		assets:   assets,
		feeds:    make(map[string]PriceFeed, len(feeds)),
	}

	for idx, asset := range assets {
		s.feeds[asset.AssetID] = feeds[idx]
	}

	return s, nil
}

// Assets listed collateral assets, in construction order
func (s *System) Assets() []*Asset {
	return s.assets
}

// Asset looks up a listed asset
func (s *System) Asset(assetID string) (*Asset, bool) {
	for _, a := range s.assets {
		if a.AssetID == assetID {
			return a, true
		}
	}

	return nil, false
}

// Feed the price feed bound to an asset
func (s *System) Feed(assetID string) (PriceFeed, bool) {
	f, ok := s.feeds[assetID]
	return f, ok
}

// IsListed reports whether the asset is an accepted collateral
func (s *System) IsListed(assetID string) bool {
	_, ok := s.feeds[assetID]
	return ok
}
