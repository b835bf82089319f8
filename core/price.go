package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Price price history row written by the pricesync worker
type Price struct {
	ID        int64           `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AssetID   string          `sql:"size:36;unique_index:idx_prices_asset_time" json:"asset_id"`
	Price     decimal.Decimal `sql:"type:decimal(32,8)" json:"price"`
	PulledAt  time.Time       `sql:"unique_index:idx_prices_asset_time" json:"pulled_at"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// IPriceStore price store interface
type IPriceStore interface {
	Create(ctx context.Context, price *Price) error
	Latest(ctx context.Context, assetID string) (*Price, error)
	List(ctx context.Context, assetID string, limit int) ([]*Price, error)
}
