package http

import (
	"net/http"

	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/pkg/httpx"
	"github.com/aussiebroadwan/inversie/pkg/inversiesdk"
)

type DecisionsHandler struct {
	DecisionService *service.DecisionService
}

// HandleList returns the caller's decisions, newest first.
//
//	@Summary	List decisions
//	@Tags		Decisions
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		inversiesdk.Decision
//	@Failure	401	{object}	inversiesdk.ErrorResponse
//	@Router		/api/decisions [get].
func (h *DecisionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.DecisionService.List(r.Context(), principal(r).User.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(list, toDecision))
}

// HandleGet returns one decision with its potje and reflection.
//
//	@Summary	Get decision
//	@Tags		Decisions
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Decision ID"
//	@Success	200	{object}	inversiesdk.Decision
//	@Failure	401	{object}	inversiesdk.ErrorResponse
//	@Failure	404	{object}	inversiesdk.ErrorResponse
//	@Router		/api/decisions/{id} [get].
func (h *DecisionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	d, err := h.DecisionService.Get(r.Context(), principal(r).User.ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDecision(d))
}

// HandleCreate files a decision for the guardian to approve.
//
//	@Summary	Create decision
//	@Tags		Decisions
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		inversiesdk.CreateDecisionRequest	true	"Decision"
//	@Success	201		{object}	inversiesdk.Decision
//	@Failure	400		{object}	inversiesdk.ErrorResponse
//	@Failure	401		{object}	inversiesdk.ErrorResponse
//	@Failure	404		{object}	inversiesdk.ErrorResponse	"Potje not found"
//	@Router		/api/decisions [post].
func (h *DecisionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req inversiesdk.CreateDecisionRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	d, err := h.DecisionService.Create(r.Context(), principal(r).User.ID, service.NewDecision{
		Title:       req.Title,
		Description: req.Description,
		Amount:      *req.Amount,
		PotjeID:     req.PotjeID,
		NeedsHelp:   req.NeedsHelp,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toDecision(d))
}

// HandleReflection rates an approved decision after the fact.
//
//	@Summary		Add reflection
//	@Description	Only approved decisions take a reflection, and only one.
//	@Tags			Decisions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Decision ID"
//	@Param			request	body		inversiesdk.CreateReflectionRequest	true	"Reflection"
//	@Success		201		{object}	inversiesdk.Reflection
//	@Failure		400		{object}	inversiesdk.ErrorResponse	"Rating out of range"
//	@Failure		401		{object}	inversiesdk.ErrorResponse
//	@Failure		404		{object}	inversiesdk.ErrorResponse
//	@Failure		409		{object}	inversiesdk.ErrorResponse	"Not approved or already reflected"
//	@Router			/api/decisions/{id}/reflection [post].
func (h *DecisionsHandler) HandleReflection(w http.ResponseWriter, r *http.Request) {
	var req inversiesdk.CreateReflectionRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	ref, err := h.DecisionService.AddReflection(r.Context(), principal(r).User.ID, r.PathValue("id"),
		req.SatisfactionRating, req.Notes)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toReflection(ref))
}
