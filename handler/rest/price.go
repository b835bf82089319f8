package rest

import (
	"net/http"

	"synth/core"
	"synth/handler/param"
	"synth/handler/render"
)

func priceListHandler(priceStore core.IPriceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Asset string `json:"asset"`
			Limit int    `json:"limit"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		prices, err := priceStore.List(r.Context(), params.Asset, params.Limit)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, prices)
	}
}

func priceLatestHandler(priceStore core.IPriceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Asset string `json:"asset"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		price, err := priceStore.Latest(r.Context(), params.Asset)
		if err != nil {
			render.NotFoundRequest(w, err)
			return
		}

		render.JSON(w, price)
	}
}
