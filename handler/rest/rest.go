package rest

import (
	"errors"
	"net/http"

	"synth/core"
	"synth/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	cfg *core.Config,
	system *core.System,
	vaultStore core.IVaultStore,
	solvencySrv core.ISolvencyService,
	valuationSrv core.IValuationService,
	transactionStore core.ITransactionStore,
	priceStore core.IPriceStore,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/assets", assetsHandler(system))
	router.Get("/constants", constantsHandler())
	router.Get("/vaults", vaultsHandler(cfg, vaultStore, solvencySrv))
	router.Get("/vaults/{user}", vaultHandler(vaultStore, solvencySrv))
	router.Get("/vaults/{user}/health", healthHandler(solvencySrv))
	router.Get("/value", valueHandler(valuationSrv))
	router.Get("/amount", amountHandler(valuationSrv))
	router.Get("/transactions", transactionsHandler(transactionStore))
	router.Get("/prices/{asset}", priceListHandler(priceStore))
	router.Get("/prices/{asset}/latest", priceLatestHandler(priceStore))

	return router
}
