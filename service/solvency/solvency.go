package solvency

import (
	"context"

	"synth/core"

	"github.com/shopspring/decimal"
)

type solvencyService struct {
	system       *core.System
	vaultStore   core.IVaultStore
	valuationSrv core.IValuationService
}

// New new solvency service
func New(system *core.System, vaultStore core.IVaultStore, valuationSrv core.IValuationService) core.ISolvencyService {
	return &solvencyService{
		system:       system,
		vaultStore:   vaultStore,
		valuationSrv: valuationSrv,
	}
}

func (s *solvencyService) TotalCollateralValue(ctx context.Context, userID string) (decimal.Decimal, error) {
	vault, err := s.vaultStore.Find(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, asset := range s.system.Assets() {
		balance := vault.Collaterals[asset.AssetID]
		if balance.IsZero() {
			continue
		}

		value, err := s.valuationSrv.ValueInUSD(ctx, asset.AssetID, balance)
		if err != nil {
			return decimal.Zero, err
		}

		total = total.Add(value)
	}

	return total, nil
}

func (s *solvencyService) HealthFactor(ctx context.Context, userID string) (core.HealthFactor, error) {
	debt, err := s.vaultStore.DebtOf(ctx, userID)
	if err != nil {
		return core.HealthFactor{}, err
	}

	if debt.IsZero() {
		return core.UnconstrainedHealth(), nil
	}

	total, err := s.TotalCollateralValue(ctx, userID)
	if err != nil {
		return core.HealthFactor{}, err
	}

	adjusted := total.Mul(core.LiquidationThreshold).Div(core.LiquidationPrecision)
	ratio := adjusted.DivRound(debt, core.ComputePrecision+1).Truncate(core.ComputePrecision)

	return core.FiniteHealth(ratio), nil
}

func (s *solvencyService) CheckSolvency(ctx context.Context, userID string) error {
	factor, err := s.HealthFactor(ctx, userID)
	if err != nil {
		return err
	}

	if factor.Below(core.MinHealthFactor) {
		return core.ErrHealthFactorBroken
	}

	return nil
}
