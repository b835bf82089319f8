package price

import (
	"context"

	"synth/core"

	"github.com/fox-one/pkg/store/db"
)

type priceStore struct {
	db *db.DB
}

// New new price store
func New(db *db.DB) core.IPriceStore {
	return &priceStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Price{})
		if err := tx.AutoMigrate(core.Price{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *priceStore) Create(ctx context.Context, price *core.Price) error {
	return s.db.Update().Where("asset_id=? and pulled_at=?", price.AssetID, price.PulledAt).FirstOrCreate(price).Error
}

func (s *priceStore) Latest(ctx context.Context, assetID string) (*core.Price, error) {
	var price core.Price
	if err := s.db.View().Where("asset_id=?", assetID).Order("pulled_at DESC").First(&price).Error; err != nil {
		return nil, err
	}

	return &price, nil
}

func (s *priceStore) List(ctx context.Context, assetID string, limit int) ([]*core.Price, error) {
	var prices []*core.Price
	if limit <= 0 {
		limit = 500
	}

	if err := s.db.View().Where("asset_id=?", assetID).Order("pulled_at DESC").Limit(limit).Find(&prices).Error; err != nil {
		return nil, err
	}

	return prices, nil
}
