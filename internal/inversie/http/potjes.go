package http

import (
	"net/http"

	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/pkg/httpx"
)

type PotjesHandler struct {
	PotjeService *service.PotjeService
}

// HandleList returns the caller's potjes sorted by name.
//
//	@Summary	List potjes
//	@Tags		Budget
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		inversiesdk.Potje
//	@Failure	401	{object}	inversiesdk.ErrorResponse
//	@Router		/api/potjes [get].
func (h *PotjesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.PotjeService.List(r.Context(), principal(r).User.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(list, toPotje))
}

// HandleGet returns one potje.
//
//	@Summary	Get potje
//	@Tags		Budget
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Potje ID"
//	@Success	200	{object}	inversiesdk.Potje
//	@Failure	401	{object}	inversiesdk.ErrorResponse
//	@Failure	404	{object}	inversiesdk.ErrorResponse
//	@Router		/api/potjes/{id} [get].
func (h *PotjesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.PotjeService.Get(r.Context(), principal(r).User.ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPotje(p))
}
