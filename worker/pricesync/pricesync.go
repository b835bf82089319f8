package pricesync

import (
	"context"
	"time"

	"synth/core"
	"synth/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// Worker pulls price tickers for every listed asset and records them as
// price history. The engine itself never reads this history, it reads feeds
// on demand; the rows exist for operators and the REST surface.
type Worker struct {
	worker.TickWorker
	system     *core.System
	priceSrv   core.IPriceOracleService
	priceStore core.IPriceStore
}

// New new pricesync worker
func New(system *core.System, priceSrv core.IPriceOracleService, priceStore core.IPriceStore) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{
			Delay:    10 * time.Second,
			ErrDelay: 30 * time.Second,
		},
		system:     system,
		priceSrv:   priceSrv,
		priceStore: priceStore,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "pricesync")

	assets := w.system.Assets()
	if len(assets) == 0 {
		log.Infoln("no assets listed")
		return nil
	}

	now := time.Now()

	tickers := make(map[string]*core.PriceTicker, len(assets))
	pulled, err := w.priceSrv.PullAllPriceTickers(ctx, now)
	if err != nil {
		log.WithError(err).Errorln("pull all price tickers")
	}
	for _, ticker := range pulled {
		tickers[ticker.AssetID] = ticker
	}

	for _, asset := range assets {
		ticker, ok := tickers[asset.AssetID]
		if !ok {
			// the bulk endpoint missed this asset, pull it alone
			t, err := w.priceSrv.PullPriceTicker(ctx, asset.AssetID, now)
			if err != nil {
				log.WithError(err).Errorln("pull price ticker", asset.Symbol)
				continue
			}
			ticker = t
		}

		if ticker.Price.LessThanOrEqual(decimal.Zero) {
			log.Errorln("invalid ticker price:", asset.Symbol, ":", ticker.Price)
			continue
		}

		price := &core.Price{
			AssetID:  asset.AssetID,
			Price:    ticker.Price,
			PulledAt: now,
		}
		if err := w.priceStore.Create(ctx, price); err != nil {
			log.WithError(err).Errorln("save price", asset.Symbol)
		}
	}

	return nil
}
