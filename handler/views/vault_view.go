package views

import (
	"synth/core"

	"github.com/shopspring/decimal"
)

// Vault vault view
type Vault struct {
	core.Vault
	CollateralValue decimal.Decimal `json:"collateral_value"`
	HealthFactor    string          `json:"health_factor"`
}

// Health health view
type Health struct {
	UserID        string          `json:"user_id"`
	Unconstrained bool            `json:"unconstrained"`
	Value         decimal.Decimal `json:"value,omitempty"`
	Liquidatable  bool            `json:"liquidatable"`
}

// Constants protocol constants view
type Constants struct {
	ValuePrecision       int32           `json:"value_precision"`
	OracleScaleAdjust    int32           `json:"oracle_scale_adjust"`
	FeedDecimals         int32           `json:"feed_decimals"`
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
	LiquidationPrecision decimal.Decimal `json:"liquidation_precision"`
	LiquidationBonus     decimal.Decimal `json:"liquidation_bonus"`
	MinHealthFactor      decimal.Decimal `json:"min_health_factor"`
}
