package rest

import (
	"net/http"

	"synth/core"
	"synth/handler/param"
	"synth/handler/render"
	"synth/handler/views"
)

// vaultsHandler lists every vault on the ledger. Operator-only; the caller
// identifies itself the same way every other endpoint trusts user ids.
func vaultsHandler(cfg *core.Config, vaultStore core.IVaultStore, solvencySrv core.ISolvencyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			User string `json:"user"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if !cfg.IsAdmin(params.User) {
			render.Error(w, http.StatusForbidden, int(core.ErrOperationForbidden), core.ErrOperationForbidden)
			return
		}

		ctx := r.Context()

		users, err := vaultStore.Users(ctx)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		items := make([]*views.Vault, 0, len(users))
		for _, user := range users {
			vault, err := vaultStore.Find(ctx, user)
			if err != nil {
				render.BadRequest(w, err)
				return
			}

			value, err := solvencySrv.TotalCollateralValue(ctx, user)
			if err != nil {
				render.BadRequest(w, err)
				return
			}

			factor, err := solvencySrv.HealthFactor(ctx, user)
			if err != nil {
				render.BadRequest(w, err)
				return
			}

			items = append(items, &views.Vault{
				Vault:           *vault,
				CollateralValue: value,
				HealthFactor:    factor.String(),
			})
		}

		render.JSON(w, items)
	}
}

func vaultHandler(vaultStore core.IVaultStore, solvencySrv core.ISolvencyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			User string `json:"user"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		ctx := r.Context()

		vault, err := vaultStore.Find(ctx, params.User)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		value, err := solvencySrv.TotalCollateralValue(ctx, params.User)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		factor, err := solvencySrv.HealthFactor(ctx, params.User)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, &views.Vault{
			Vault:           *vault,
			CollateralValue: value,
			HealthFactor:    factor.String(),
		})
	}
}

func healthHandler(solvencySrv core.ISolvencyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			User string `json:"user"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		ctx := r.Context()

		factor, err := solvencySrv.HealthFactor(ctx, params.User)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, &views.Health{
			UserID:        params.User,
			Unconstrained: factor.Unconstrained,
			Value:         factor.Value,
			Liquidatable:  factor.Below(core.MinHealthFactor),
		})
	}
}
