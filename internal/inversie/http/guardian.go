package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/pkg/httpx"
	"github.com/aussiebroadwan/inversie/pkg/inversiesdk"
)

type GuardianHandler struct {
	GuardianService *service.GuardianService
}

// HandleListClients returns the clients of the calling bewindvoerder.
//
//	@Summary	List clients
//	@Tags		Bewindvoerder
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		inversiesdk.ClientOverview
//	@Failure	401	{object}	inversiesdk.ErrorResponse
//	@Failure	403	{object}	inversiesdk.ErrorResponse	"Not a bewindvoerder"
//	@Router		/api/bewindvoerder/clients [get].
func (h *GuardianHandler) HandleListClients(w http.ResponseWriter, r *http.Request) {
	list, err := h.GuardianService.ListClients(r.Context(), principal(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(list, toClientOverview))
}

// HandleClientDecisions returns the decisions of one client.
//
//	@Summary	List client decisions
//	@Tags		Bewindvoerder
//	@Security	BearerAuth
//	@Produce	json
//	@Param		clientId	path		string	true	"Client ID"
//	@Success	200			{array}		inversiesdk.Decision
//	@Failure	401			{object}	inversiesdk.ErrorResponse
//	@Failure	403			{object}	inversiesdk.ErrorResponse	"Not this client's bewindvoerder"
//	@Router		/api/bewindvoerder/clients/{clientId}/decisions [get].
func (h *GuardianHandler) HandleClientDecisions(w http.ResponseWriter, r *http.Request) {
	list, err := h.GuardianService.ClientDecisions(r.Context(), principal(r), r.PathValue("clientId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(list, toDecision))
}

// HandleClientMoneyRequests returns the money requests of one client.
//
//	@Summary	List client money requests
//	@Tags		Bewindvoerder
//	@Security	BearerAuth
//	@Produce	json
//	@Param		clientId	path		string	true	"Client ID"
//	@Success	200			{array}		inversiesdk.MoneyRequest
//	@Failure	401			{object}	inversiesdk.ErrorResponse
//	@Failure	403			{object}	inversiesdk.ErrorResponse	"Not this client's bewindvoerder"
//	@Router		/api/bewindvoerder/clients/{clientId}/money-requests [get].
func (h *GuardianHandler) HandleClientMoneyRequests(w http.ResponseWriter, r *http.Request) {
	list, err := h.GuardianService.ClientMoneyRequests(r.Context(), principal(r), r.PathValue("clientId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(list, toMoneyRequest))
}

// HandleDecideDecision approves or denies a decision and notifies the client.
//
//	@Summary		Approve or deny a decision
//	@Description	Only PENDING decisions can be decided unless strict transitions are turned off.
//	@Tags			Bewindvoerder
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Decision ID"
//	@Param			action	path		string						true	"approve or deny"	Enums(approve, deny)
//	@Param			request	body		inversiesdk.DecideRequest	false	"Optional message for the client"
//	@Success		200		{object}	inversiesdk.Decision
//	@Failure		400		{object}	inversiesdk.ErrorResponse
//	@Failure		401		{object}	inversiesdk.ErrorResponse
//	@Failure		403		{object}	inversiesdk.ErrorResponse
//	@Failure		404		{object}	inversiesdk.ErrorResponse
//	@Failure		409		{object}	inversiesdk.ErrorResponse	"Already decided"
//	@Router			/api/bewindvoerder/decisions/{id}/{action} [post].
func (h *GuardianHandler) HandleDecideDecision(status domain.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome, apiErr := decodeOutcome(r, status)
		if apiErr != nil {
			apiErr.WriteError(w)
			return
		}

		d, err := h.GuardianService.DecideDecision(r.Context(), principal(r), r.PathValue("id"), outcome)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDecision(d))
	}
}

// HandleDecideMoneyRequest approves or denies a money request and notifies
// the client.
//
//	@Summary	Approve or deny a money request
//	@Tags		Bewindvoerder
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Money request ID"
//	@Param		action	path		string						true	"approve or deny"	Enums(approve, deny)
//	@Param		request	body		inversiesdk.DecideRequest	false	"Optional message for the client"
//	@Success	200		{object}	inversiesdk.MoneyRequest
//	@Failure	400		{object}	inversiesdk.ErrorResponse
//	@Failure	401		{object}	inversiesdk.ErrorResponse
//	@Failure	403		{object}	inversiesdk.ErrorResponse
//	@Failure	404		{object}	inversiesdk.ErrorResponse
//	@Failure	409		{object}	inversiesdk.ErrorResponse	"Already decided"
//	@Router		/api/bewindvoerder/money-requests/{id}/{action} [post].
func (h *GuardianHandler) HandleDecideMoneyRequest(status domain.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome, apiErr := decodeOutcome(r, status)
		if apiErr != nil {
			apiErr.WriteError(w)
			return
		}

		m, err := h.GuardianService.DecideMoneyRequest(r.Context(), principal(r), r.PathValue("id"), outcome)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toMoneyRequest(m))
	}
}

func decodeOutcome(r *http.Request, status domain.Status) (domain.Outcome, *inversiesdk.APIError) {
	var req inversiesdk.DecideRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		return domain.Outcome{}, apiErr
	}
	if req.Message != nil && strings.TrimSpace(*req.Message) == "" {
		req.Message = nil
	}
	return domain.Outcome{Status: status, Message: req.Message}, nil
}
