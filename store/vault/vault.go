package vault

import (
	"context"
	"sync"

	"synth/core"
	"synth/pkg/number"

	"github.com/shopspring/decimal"
)

// vaultStore is the authoritative position ledger. It lives in memory and is
// owned by exactly one engine instance; the engine serializes operations per
// account and uses Snapshot/Restore to undo failed ones. Balances never go
// negative: overdraw is rejected, not clamped.
type vaultStore struct {
	mux    sync.RWMutex
	vaults map[string]*core.Vault
}

// New new vault store
func New() core.IVaultStore {
	return &vaultStore{
		vaults: make(map[string]*core.Vault),
	}
}

func (s *vaultStore) vault(userID string) *core.Vault {
	v, ok := s.vaults[userID]
	if !ok {
		v = &core.Vault{
			UserID:      userID,
			Collaterals: make(map[string]decimal.Decimal),
		}
		s.vaults[userID] = v
	}

	return v
}

func (s *vaultStore) Deposit(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	if !number.NonNegative(amount) {
		return core.ErrInvalidAmount
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	v := s.vault(userID)
	v.Collaterals[assetID] = v.Collaterals[assetID].Add(amount)
	return nil
}

func (s *vaultStore) Withdraw(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	if !number.NonNegative(amount) {
		return core.ErrInvalidAmount
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	v := s.vault(userID)
	balance := v.Collaterals[assetID]
	if amount.GreaterThan(balance) {
		return core.ErrInsufficientCollateral
	}

	v.Collaterals[assetID] = balance.Sub(amount)
	return nil
}

func (s *vaultStore) AddDebt(ctx context.Context, userID string, amount decimal.Decimal) error {
	if !number.NonNegative(amount) {
		return core.ErrInvalidAmount
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	v := s.vault(userID)
	v.Debt = v.Debt.Add(amount)
	return nil
}

func (s *vaultStore) ReduceDebt(ctx context.Context, userID string, amount decimal.Decimal) error {
	if !number.NonNegative(amount) {
		return core.ErrInvalidAmount
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	v := s.vault(userID)
	if amount.GreaterThan(v.Debt) {
		return core.ErrInsufficientDebt
	}

	v.Debt = v.Debt.Sub(amount)
	return nil
}

func (s *vaultStore) Find(ctx context.Context, userID string) (*core.Vault, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	v, ok := s.vaults[userID]
	if !ok {
		// a vault that never existed reads the same as an all-zero one
		return &core.Vault{
			UserID:      userID,
			Collaterals: make(map[string]decimal.Decimal),
		}, nil
	}

	return copyVault(v), nil
}

func (s *vaultStore) CollateralOf(ctx context.Context, userID, assetID string) (decimal.Decimal, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	if v, ok := s.vaults[userID]; ok {
		return v.Collaterals[assetID], nil
	}

	return decimal.Zero, nil
}

func (s *vaultStore) DebtOf(ctx context.Context, userID string) (decimal.Decimal, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	if v, ok := s.vaults[userID]; ok {
		return v.Debt, nil
	}

	return decimal.Zero, nil
}

func (s *vaultStore) Users(ctx context.Context) ([]string, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	users := make([]string, 0, len(s.vaults))
	for userID := range s.vaults {
		users = append(users, userID)
	}

	return users, nil
}

func (s *vaultStore) Snapshot(ctx context.Context, userID string) (*core.VaultSnapshot, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	snapshot := &core.VaultSnapshot{
		UserID:      userID,
		Collaterals: make(map[string]decimal.Decimal),
	}

	if v, ok := s.vaults[userID]; ok {
		for assetID, balance := range v.Collaterals {
			snapshot.Collaterals[assetID] = balance
		}
		snapshot.Debt = v.Debt
	}

	return snapshot, nil
}

func (s *vaultStore) Restore(ctx context.Context, snapshot *core.VaultSnapshot) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	v := s.vault(snapshot.UserID)
	v.Collaterals = make(map[string]decimal.Decimal, len(snapshot.Collaterals))
	for assetID, balance := range snapshot.Collaterals {
		v.Collaterals[assetID] = balance
	}
	v.Debt = snapshot.Debt

	return nil
}

func copyVault(v *core.Vault) *core.Vault {
	out := &core.Vault{
		UserID:      v.UserID,
		Collaterals: make(map[string]decimal.Decimal, len(v.Collaterals)),
		Debt:        v.Debt,
	}

	for assetID, balance := range v.Collaterals {
		out.Collaterals[assetID] = balance
	}

	return out
}
