package core

import (
	"github.com/fox-one/pkg/store/db"
)

// Config synth config
type Config struct {
	App         App           `json:"app"`
	DB          db.Config     `json:"db"`
	PriceOracle PriceOracle   `json:"price_oracle"`
	Assets      []AssetConfig `json:"assets"`
	Admins      []string      `json:"admins"`
}

// App app config
type App struct {
	// ClientID is the engine's own identity at the token collaborators,
	// the custody side of every TransferFrom
	ClientID string `json:"client_id"`
	Genesis  int64  `json:"genesis"`
	Location string `json:"location"`
}

// PriceOracle price oracle config
type PriceOracle struct {
	EndPoint string `json:"end_point"`
}

// AssetConfig one listed collateral asset
type AssetConfig struct {
	AssetID string `json:"asset_id"`
	Symbol  string `json:"symbol"`
}

// IsAdmin check if the user is admin
func (c *Config) IsAdmin(userID string) bool {
	if len(c.Admins) <= 0 {
		return false
	}

	for _, a := range c.Admins {
		if a == userID {
			return true
		}
	}

	return false
}
