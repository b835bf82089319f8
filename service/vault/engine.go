package vault

import (
	"context"
	"fmt"
	"sync"

	"synth/core"

	"github.com/fox-one/pkg/logger"
	foxuuid "github.com/fox-one/pkg/uuid"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// collateralEngine drives every state-changing operation. Discipline shared
// by all operations: validate inputs, take the affected vault's lock, mutate
// the ledger, run the solvency post-check, and only then touch the external
// token collaborators. Any failure after the snapshot restores the ledger, so
// no partial mutation is ever observable and a reentrant collaborator call
// sees fully settled state.
type collateralEngine struct {
	system           *core.System
	vaultStore       core.IVaultStore
	transactionStore core.ITransactionStore
	valuationSrv     core.IValuationService
	solvencySrv      core.ISolvencyService
	debtToken        core.DebtToken
	collaterals      map[string]core.CollateralToken

	locks sync.Map
}

// New new collateral engine. Every listed asset must come with its collateral
// token collaborator; a missing one is a configuration error.
func New(
	system *core.System,
	vaultStore core.IVaultStore,
	transactionStore core.ITransactionStore,
	valuationSrv core.IValuationService,
	solvencySrv core.ISolvencyService,
	debtToken core.DebtToken,
	collaterals map[string]core.CollateralToken,
) (core.ICollateralEngine, error) {
	for _, asset := range system.Assets() {
		if _, ok := collaterals[asset.AssetID]; !ok {
			return nil, fmt.Errorf("engine: no collateral token for asset %s", asset.AssetID)
		}
	}

	// the map must not widen the listed set either; an extra token would
	// accept deposits that solvency never values
	for assetID := range collaterals {
		if !system.IsListed(assetID) {
			return nil, fmt.Errorf("engine: collateral token for unlisted asset %s", assetID)
		}
	}

	return &collateralEngine{
		system:           system,
		vaultStore:       vaultStore,
		transactionStore: transactionStore,
		valuationSrv:     valuationSrv,
		solvencySrv:      solvencySrv,
		debtToken:        debtToken,
		collaterals:      collaterals,
	}, nil
}

func (e *collateralEngine) lock(userID string) *sync.Mutex {
	mux, _ := e.locks.LoadOrStore(userID, &sync.Mutex{})
	return mux.(*sync.Mutex)
}

// withVault serializes an operation on one vault and undoes its ledger
// mutations when the operation fails.
func (e *collateralEngine) withVault(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	mux := e.lock(userID)
	mux.Lock()
	defer mux.Unlock()

	return e.guarded(ctx, userID, fn)
}

// guarded runs fn and restores the vault's snapshot when it fails. The
// caller must hold the vault's lock.
func (e *collateralEngine) guarded(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	snapshot, err := e.vaultStore.Snapshot(ctx, userID)
	if err != nil {
		return err
	}

	if err := fn(ctx); err != nil {
		if re := e.vaultStore.Restore(ctx, snapshot); re != nil {
			logger.FromContext(ctx).WithError(re).Errorln("engine: restore vault", userID)
		}
		return err
	}

	return nil
}

func (e *collateralEngine) DepositCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	token, ok := e.collaterals[assetID]
	if !ok {
		return core.ErrAssetNotListed
	}

	err := e.withVault(ctx, userID, func(ctx context.Context) error {
		if err := e.vaultStore.Deposit(ctx, userID, assetID, amount); err != nil {
			return err
		}

		// deposits cannot worsen solvency, no post-check
		if err := token.TransferFrom(ctx, userID, e.system.ClientID, amount); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("engine: pull collateral", assetID, userID)
			return core.ErrTransferFailed
		}

		return nil
	})
	if err != nil {
		return err
	}

	e.journal(ctx, core.ActionTypeDeposit, userID, assetID, amount, nil)
	return nil
}

func (e *collateralEngine) MintDebt(ctx context.Context, userID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	err := e.withVault(ctx, userID, func(ctx context.Context) error {
		if err := e.vaultStore.AddDebt(ctx, userID, amount); err != nil {
			return err
		}

		if err := e.solvencySrv.CheckSolvency(ctx, userID); err != nil {
			return err
		}

		if err := e.debtToken.Mint(ctx, userID, amount); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("engine: mint debt token", userID)
			return core.ErrMintFailed
		}

		return nil
	})
	if err != nil {
		return err
	}

	e.journal(ctx, core.ActionTypeMint, userID, "", amount, nil)
	return nil
}

func (e *collateralEngine) BurnDebt(ctx context.Context, userID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	err := e.withVault(ctx, userID, func(ctx context.Context) error {
		// rejects overburn before anything else happens
		if err := e.vaultStore.ReduceDebt(ctx, userID, amount); err != nil {
			return err
		}

		if err := e.debtToken.TransferFrom(ctx, userID, e.system.ClientID, amount); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("engine: pull debt token", userID)
			return core.ErrTransferFailed
		}

		if err := e.debtToken.Burn(ctx, e.system.ClientID, amount); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("engine: burn debt token", userID)
			return core.ErrBurnFailed
		}

		return nil
	})
	if err != nil {
		return err
	}

	e.journal(ctx, core.ActionTypeBurn, userID, "", amount, nil)
	return nil
}

func (e *collateralEngine) RedeemCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	token, ok := e.collaterals[assetID]
	if !ok {
		return core.ErrAssetNotListed
	}

	err := e.withVault(ctx, userID, func(ctx context.Context) error {
		if err := e.vaultStore.Withdraw(ctx, userID, assetID, amount); err != nil {
			return err
		}

		if err := e.solvencySrv.CheckSolvency(ctx, userID); err != nil {
			return err
		}

		if err := token.Transfer(ctx, userID, amount); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("engine: return collateral", assetID, userID)
			return core.ErrTransferFailed
		}

		return nil
	})
	if err != nil {
		return err
	}

	e.journal(ctx, core.ActionTypeRedeem, userID, assetID, amount, nil)
	return nil
}

func (e *collateralEngine) DepositAndMint(ctx context.Context, userID, assetID string, depositAmount, mintAmount decimal.Decimal) error {
	if !depositAmount.IsPositive() || !mintAmount.IsPositive() {
		return core.ErrInvalidAmount
	}

	token, ok := e.collaterals[assetID]
	if !ok {
		return core.ErrAssetNotListed
	}

	err := e.withVault(ctx, userID, func(ctx context.Context) error {
		if err := e.vaultStore.Deposit(ctx, userID, assetID, depositAmount); err != nil {
			return err
		}

		if err := e.vaultStore.AddDebt(ctx, userID, mintAmount); err != nil {
			return err
		}

		if err := e.solvencySrv.CheckSolvency(ctx, userID); err != nil {
			return err
		}

		if err := token.TransferFrom(ctx, userID, e.system.ClientID, depositAmount); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("engine: pull collateral", assetID, userID)
			return core.ErrTransferFailed
		}

		if err := e.debtToken.Mint(ctx, userID, mintAmount); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("engine: mint debt token", userID)
			return core.ErrMintFailed
		}

		return nil
	})
	if err != nil {
		return err
	}

	extra := core.NewTransactionExtra()
	extra.Put(core.TransactionKeyMintAmount, mintAmount)
	e.journal(ctx, core.ActionTypeDepositAndMint, userID, assetID, depositAmount, extra)
	return nil
}

func (e *collateralEngine) RedeemForDebt(ctx context.Context, userID, assetID string, burnAmount, redeemAmount decimal.Decimal) error {
	if !burnAmount.IsPositive() || !redeemAmount.IsPositive() {
		return core.ErrInvalidAmount
	}

	token, ok := e.collaterals[assetID]
	if !ok {
		return core.ErrAssetNotListed
	}

	err := e.withVault(ctx, userID, func(ctx context.Context) error {
		if err := e.vaultStore.ReduceDebt(ctx, userID, burnAmount); err != nil {
			return err
		}

		if err := e.vaultStore.Withdraw(ctx, userID, assetID, redeemAmount); err != nil {
			return err
		}

		if err := e.solvencySrv.CheckSolvency(ctx, userID); err != nil {
			return err
		}

		if err := e.debtToken.TransferFrom(ctx, userID, e.system.ClientID, burnAmount); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("engine: pull debt token", userID)
			return core.ErrTransferFailed
		}

		if err := e.debtToken.Burn(ctx, e.system.ClientID, burnAmount); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("engine: burn debt token", userID)
			return core.ErrBurnFailed
		}

		if err := token.Transfer(ctx, userID, redeemAmount); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("engine: return collateral", assetID, userID)
			return core.ErrTransferFailed
		}

		return nil
	})
	if err != nil {
		return err
	}

	extra := core.NewTransactionExtra()
	extra.Put(core.TransactionKeyDebt, burnAmount)
	e.journal(ctx, core.ActionTypeRedeemForDebt, userID, assetID, redeemAmount, extra)
	return nil
}

func (e *collateralEngine) Liquidate(ctx context.Context, liquidator, userID, assetID string, debtToCover decimal.Decimal) error {
	if !debtToCover.IsPositive() {
		return core.ErrInvalidAmount
	}

	token, ok := e.collaterals[assetID]
	if !ok {
		return core.ErrAssetNotListed
	}

	log := logger.FromContext(ctx).WithField("worker", "liquidation")

	// the target's ledger mutates and the liquidator's vault is read for the
	// closing solvency check; take both locks, ordered by user id so crossed
	// liquidations cannot deadlock
	first, second := liquidator, userID
	if second < first {
		first, second = second, first
	}

	firstMux := e.lock(first)
	firstMux.Lock()
	defer firstMux.Unlock()

	if second != first {
		secondMux := e.lock(second)
		secondMux.Lock()
		defer secondMux.Unlock()
	}

	var seized, bonus decimal.Decimal
	var endingHealth core.HealthFactor
	err := e.guarded(ctx, userID, func(ctx context.Context) error {
		startingHealth, err := e.solvencySrv.HealthFactor(ctx, userID)
		if err != nil {
			return err
		}

		if !startingHealth.Below(core.MinHealthFactor) {
			return core.ErrHealthFactorOk
		}

		seizedBase, err := e.valuationSrv.AmountFromUSD(ctx, assetID, debtToCover)
		if err != nil {
			return err
		}

		bonus = seizedBase.Mul(core.LiquidationBonus).Div(core.LiquidationPrecision).Truncate(core.ComputePrecision)
		seized = seizedBase.Add(bonus)

		if err := e.vaultStore.Withdraw(ctx, userID, assetID, seized); err != nil {
			return err
		}

		if err := e.vaultStore.ReduceDebt(ctx, userID, debtToCover); err != nil {
			return err
		}

		endingHealth, err = e.solvencySrv.HealthFactor(ctx, userID)
		if err != nil {
			return err
		}

		if !endingHealth.ImprovedOver(startingHealth) {
			return core.ErrHealthFactorNotImproved
		}

		// the liquidator's debt only shrinks here, so this cannot fail with
		// the current operation set; it guards future extensions that let a
		// liquidator mint in the same call
		if err := e.solvencySrv.CheckSolvency(ctx, liquidator); err != nil {
			return err
		}

		log.Infof("liquidate vault:%s asset:%s cover:%s seized:%s health:%s->%s",
			userID, assetID, debtToCover, seized, startingHealth, endingHealth)

		if err := e.debtToken.TransferFrom(ctx, liquidator, e.system.ClientID, debtToCover); err != nil {
			log.WithError(err).Errorln("engine: pull debt token", liquidator)
			return core.ErrTransferFailed
		}

		if err := e.debtToken.Burn(ctx, e.system.ClientID, debtToCover); err != nil {
			log.WithError(err).Errorln("engine: burn debt token", liquidator)
			return core.ErrBurnFailed
		}

		if err := token.Transfer(ctx, liquidator, seized); err != nil {
			log.WithError(err).Errorln("engine: transfer seized collateral", assetID, liquidator)
			return core.ErrTransferFailed
		}

		return nil
	})
	if err != nil {
		return err
	}

	extra := core.NewTransactionExtra()
	extra.Put(core.TransactionKeyLiquidator, liquidator)
	extra.Put(core.TransactionKeySeizedAmount, seized)
	extra.Put(core.TransactionKeyBonusAmount, bonus)
	extra.Put(core.TransactionKeyHealthFactor, endingHealth.String())
	e.journal(ctx, core.ActionTypeLiquidate, userID, assetID, debtToCover, extra)
	return nil
}

// journal records a completed operation. The operation itself already
// succeeded; a journal failure is logged and swallowed.
func (e *collateralEngine) journal(ctx context.Context, action core.ActionType, userID, assetID string, amount decimal.Decimal, extra core.TransactionExtraData) {
	if e.transactionStore == nil {
		return
	}

	if extra == nil {
		extra = core.NewTransactionExtra()
	}

	traceID := uuid.Must(uuid.NewV4()).String()

	transaction := &core.Transaction{
		Action:   action,
		TraceID:  traceID,
		UserID:   userID,
		FollowID: foxuuid.Modify(traceID, "follow"),
		AssetID:  assetID,
		Amount:   amount,
		Status:   core.TransactionStatusComplete,
	}
	transaction.SetExtraData(extra)

	if err := e.transactionStore.Create(ctx, transaction); err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("engine: journal", traceID)
	}
}
