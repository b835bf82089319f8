package rest

import (
	"net/http"

	"synth/core"
	"synth/handler/param"
	"synth/handler/render"

	"github.com/shopspring/decimal"
)

func valueHandler(valuationSrv core.IValuationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Asset  string          `json:"asset"`
			Amount decimal.Decimal `json:"amount"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		value, err := valuationSrv.ValueInUSD(r.Context(), params.Asset, params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{
			"asset":  params.Asset,
			"amount": params.Amount,
			"value":  value,
		})
	}
}

func amountHandler(valuationSrv core.IValuationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Asset string          `json:"asset"`
			Value decimal.Decimal `json:"value"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := valuationSrv.AmountFromUSD(r.Context(), params.Asset, params.Value)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{
			"asset":  params.Asset,
			"value":  params.Value,
			"amount": amount,
		})
	}
}
