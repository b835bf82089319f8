package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// HealthFactor solvency margin of a vault. A vault with zero debt is
// structurally unconstrained instead of carrying a numeric infinity.
type HealthFactor struct {
	Unconstrained bool            `json:"unconstrained"`
	Value         decimal.Decimal `json:"value"`
}

// Unconstrained the zero-debt sentinel
func UnconstrainedHealth() HealthFactor {
	return HealthFactor{Unconstrained: true}
}

// FiniteHealth a finite ratio
func FiniteHealth(v decimal.Decimal) HealthFactor {
	return HealthFactor{Value: v}
}

// Below reports whether the factor is finite and under min
func (h HealthFactor) Below(min decimal.Decimal) bool {
	return !h.Unconstrained && h.Value.LessThan(min)
}

// ImprovedOver reports whether h is a strict improvement over prev. Becoming
// unconstrained always improves a finite factor.
func (h HealthFactor) ImprovedOver(prev HealthFactor) bool {
	if h.Unconstrained {
		return !prev.Unconstrained
	}

	if prev.Unconstrained {
		return false
	}

	return h.Value.GreaterThan(prev.Value)
}

func (h HealthFactor) String() string {
	if h.Unconstrained {
		return "max"
	}

	return h.Value.String()
}

// ISolvencyService computes health factors and gates mutations on them
type ISolvencyService interface {
	TotalCollateralValue(ctx context.Context, userID string) (decimal.Decimal, error)
	HealthFactor(ctx context.Context, userID string) (HealthFactor, error)
	// CheckSolvency fails with ErrHealthFactorBroken when the vault's factor
	// is finite and below MinHealthFactor
	CheckSolvency(ctx context.Context, userID string) error
}
