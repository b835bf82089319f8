package handler

import (
	"net/http"

	"synth/core"
	"synth/handler/render"
	"synth/handler/rest"

	"github.com/go-chi/chi"
	"github.com/twitchtv/twirp"
)

// Server server
type Server struct {
	cfg              *core.Config
	system           *core.System
	vaultStore       core.IVaultStore
	solvencySrv      core.ISolvencyService
	valuationSrv     core.IValuationService
	transactionStore core.ITransactionStore
	priceStore       core.IPriceStore
}

// New new server
func New(
	cfg *core.Config,
	system *core.System,
	vaultStore core.IVaultStore,
	solvencySrv core.ISolvencyService,
	valuationSrv core.IValuationService,
	transactionStore core.ITransactionStore,
	priceStore core.IPriceStore,
) Server {
	return Server{
		cfg:              cfg,
		system:           system,
		vaultStore:       vaultStore,
		solvencySrv:      solvencySrv,
		valuationSrv:     valuationSrv,
		transactionStore: transactionStore,
		priceStore:       priceStore,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	r.Use(resetRoutePath)
	r.Use(render.WrapResponse(true))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Error(w, http.StatusNotFound, -1, twirp.NotFoundError("not found"))
	})

	r.Mount("/", rest.Handle(s.cfg, s.system, s.vaultStore, s.solvencySrv, s.valuationSrv, s.transactionStore, s.priceStore))

	return r
}

func resetRoutePath(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if c := chi.RouteContext(ctx); c != nil {
			c.RoutePath = r.URL.Path
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
