package cmd

import (
	"time"

	"synth/core"
	oracleservice "synth/service/oracle"
	solvencyservice "synth/service/solvency"
	valuationservice "synth/service/valuation"
	priceStore "synth/store/price"
	transactionstore "synth/store/transaction"
	vaultstore "synth/store/vault"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

func provideSystem() *core.System {
	assets := make([]*core.Asset, 0, len(cfg.Assets))
	feeds := make([]core.PriceFeed, 0, len(cfg.Assets))
	for _, a := range cfg.Assets {
		assets = append(assets, &core.Asset{AssetID: a.AssetID, Symbol: a.Symbol})
		feeds = append(feeds, oracleservice.NewTickerFeed(cfg.PriceOracle.EndPoint, a.AssetID))
	}

	system, err := core.NewSystem(cfg.App.ClientID, assets, feeds)
	if err != nil {
		panic(err)
	}

	system.Location = cfg.App.Location
	system.Genesis = cfg.App.Genesis
	system.Version = rootCmd.Version

	return system
}

// ---------------store-----------------------------------------

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func provideVaultStore() core.IVaultStore {
	return vaultstore.New()
}

func provideTransactionStore(db *db.DB) core.ITransactionStore {
	return transactionstore.New(db)
}

func providePriceStore(db *db.DB) core.IPriceStore {
	return priceStore.New(db)
}

// ------------------service------------------------------------

func providePriceService(system *core.System) core.IPriceOracleService {
	return oracleservice.Cache(oracleservice.New(system, provideConfig()), 10*time.Second)
}

func provideValuationService(system *core.System, priceSrv core.IPriceOracleService) core.IValuationService {
	return valuationservice.New(system, priceSrv)
}

func provideSolvencyService(system *core.System, vaultStore core.IVaultStore, valuationSrv core.IValuationService) core.ISolvencyService {
	return solvencyservice.New(system, vaultStore, valuationSrv)
}
