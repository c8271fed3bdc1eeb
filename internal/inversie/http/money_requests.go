package http

import (
	"net/http"

	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/pkg/httpx"
	"github.com/aussiebroadwan/inversie/pkg/inversiesdk"
)

type MoneyRequestsHandler struct {
	MoneyRequestService *service.MoneyRequestService
}

// HandleList returns the caller's money requests, newest first.
//
//	@Summary	List money requests
//	@Tags		Money requests
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		inversiesdk.MoneyRequest
//	@Failure	401	{object}	inversiesdk.ErrorResponse
//	@Router		/api/money-requests [get].
func (h *MoneyRequestsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.MoneyRequestService.List(r.Context(), principal(r).User.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(list, toMoneyRequest))
}

// HandleCreate asks the guardian for extra money, with a photo as evidence.
//
//	@Summary	Create money request
//	@Tags		Money requests
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		inversiesdk.CreateMoneyRequestRequest	true	"Money request"
//	@Success	201		{object}	inversiesdk.MoneyRequest
//	@Failure	400		{object}	inversiesdk.ErrorResponse
//	@Failure	401		{object}	inversiesdk.ErrorResponse
//	@Router		/api/money-requests [post].
func (h *MoneyRequestsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req inversiesdk.CreateMoneyRequestRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	m, err := h.MoneyRequestService.Create(r.Context(), principal(r).User.ID, service.NewMoneyRequest{
		Amount:      *req.Amount,
		Category:    req.Category,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMoneyRequest(m))
}
