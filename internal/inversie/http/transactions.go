package http

import (
	"net/http"

	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/pkg/httpx"
)

type TransactionsHandler struct {
	TransactionService *service.TransactionService
}

// ServeHTTP lists the caller's transactions, newest first.
//
//	@Summary		List transactions
//	@Description	startDate is inclusive. endDate is exclusive, but a plain YYYY-MM-DD endDate includes that day.
//	@Tags			Budget
//	@Security		BearerAuth
//	@Produce		json
//	@Param			startDate	query		string	false	"YYYY-MM-DD or RFC 3339"
//	@Param			endDate		query		string	false	"YYYY-MM-DD or RFC 3339"
//	@Param			category	query		string	false	"Exact category"
//	@Success		200			{array}		inversiesdk.Transaction
//	@Failure		400			{object}	inversiesdk.ErrorResponse	"Unparseable date"
//	@Failure		401			{object}	inversiesdk.ErrorResponse
//	@Router			/api/transactions [get].
func (h *TransactionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, err := service.ParseTransactionFilter(q.Get("startDate"), q.Get("endDate"), q.Get("category"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	list, err := h.TransactionService.List(r.Context(), principal(r).User.ID, filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(list, toTransaction))
}
