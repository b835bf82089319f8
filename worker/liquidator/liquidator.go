package liquidator

import (
	"context"
	"time"

	"synth/core"
	"synth/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
	"github.com/robfig/cron/v3"
)

const checkpointKey = "liquidation_scan_checkpoint"

// Candidate a vault found below the minimum health factor
type Candidate struct {
	UserID       string
	HealthFactor core.HealthFactor
	Debt         string
}

// Worker scans all vaults for broken health factors. It does not liquidate
// by itself; liquidation is permissionless and needs a liquidator holding
// debt tokens. The scan surfaces candidates to the log so keepers can act.
type Worker struct {
	worker.BaseJob
	vaultStore  core.IVaultStore
	solvencySrv core.ISolvencyService
	property    property.Store
}

// New new liquidator scan worker
func New(location string, vaultStore core.IVaultStore, solvencySrv core.ISolvencyService, property property.Store) *Worker {
	w := Worker{
		vaultStore:  vaultStore,
		solvencySrv: solvencySrv,
		property:    property,
	}

	l, _ := time.LoadLocation(location)
	w.Cron = cron.New(cron.WithLocation(l))
	spec := "@every 10s"
	w.Cron.AddFunc(spec, w.BaseJob.Run)
	w.OnWork = func() error {
		return w.onWork(context.Background())
	}

	return &w
}

// Run starts the cron and blocks until ctx is done
func (w *Worker) Run(ctx context.Context) error {
	if err := w.BaseJob.Start(); err != nil {
		return err
	}

	<-ctx.Done()
	return w.BaseJob.Stop()
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "liquidator")

	users, err := w.vaultStore.Users(ctx)
	if err != nil {
		log.WithError(err).Errorln("list vault users")
		return err
	}

	candidates, err := w.Scan(ctx, users)
	if err != nil {
		return err
	}

	for _, c := range candidates {
		log.Warnf("vault below minimum health: user:%s health:%s debt:%s", c.UserID, c.HealthFactor, c.Debt)
	}

	if err := w.property.Save(ctx, checkpointKey, time.Now().Unix()); err != nil {
		log.WithError(err).Errorln("property.Save", checkpointKey)
	}

	return nil
}

// Scan computes health factors for the given users and keeps the broken ones
func (w *Worker) Scan(ctx context.Context, users []string) ([]*Candidate, error) {
	log := logger.FromContext(ctx).WithField("worker", "liquidator")

	candidates := make([]*Candidate, 0)
	for _, userID := range users {
		factor, err := w.solvencySrv.HealthFactor(ctx, userID)
		if err != nil {
			log.WithError(err).Errorln("health factor", userID)
			continue
		}

		if !factor.Below(core.MinHealthFactor) {
			continue
		}

		debt, err := w.vaultStore.DebtOf(ctx, userID)
		if err != nil {
			continue
		}

		candidates = append(candidates, &Candidate{
			UserID:       userID,
			HealthFactor: factor,
			Debt:         debt.String(),
		})
	}

	return candidates, nil
}
