package rest

import (
	"net/http"

	"synth/core"
	"synth/handler/render"
	"synth/handler/views"
)

func assetsHandler(system *core.System) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, system.Assets())
	}
}

func constantsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, &views.Constants{
			ValuePrecision:       core.ValuePrecision,
			OracleScaleAdjust:    core.OracleScaleAdjust,
			FeedDecimals:         core.FeedDecimals,
			LiquidationThreshold: core.LiquidationThreshold,
			LiquidationPrecision: core.LiquidationPrecision,
			LiquidationBonus:     core.LiquidationBonus,
			MinHealthFactor:      core.MinHealthFactor,
		})
	}
}
