package rest

import (
	"net/http"
	"time"

	"synth/core"
	"synth/handler/param"
	"synth/handler/render"
)

func transactionsHandler(transactionStore core.ITransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Offset string `json:"offset"`
			Limit  int    `json:"limit"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		offset, _ := time.Parse(time.RFC3339Nano, params.Offset)

		transactions, e := transactionStore.List(r.Context(), offset, params.Limit)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		render.JSON(w, transactions)
	}
}
