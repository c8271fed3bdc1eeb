package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/pkg/httpx"
	"github.com/aussiebroadwan/inversie/pkg/inversiesdk"
)

type SavingsGoalsHandler struct {
	SavingsGoalService *service.SavingsGoalService
}

// HandleList returns the caller's savings goals.
//
//	@Summary	List savings goals
//	@Tags		Savings goals
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		inversiesdk.SavingsGoal
//	@Failure	401	{object}	inversiesdk.ErrorResponse
//	@Router		/api/savings-goals [get].
func (h *SavingsGoalsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.SavingsGoalService.List(r.Context(), principal(r).User.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(list, toSavingsGoal))
}

// HandleCreate adds a savings goal.
//
//	@Summary	Create savings goal
//	@Tags		Savings goals
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		inversiesdk.CreateSavingsGoalRequest	true	"Savings goal"
//	@Success	201		{object}	inversiesdk.SavingsGoal
//	@Failure	400		{object}	inversiesdk.ErrorResponse
//	@Failure	401		{object}	inversiesdk.ErrorResponse
//	@Router		/api/savings-goals [post].
func (h *SavingsGoalsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req inversiesdk.CreateSavingsGoalRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}
	targetDate, err := optionalDate(req.TargetDate)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	g, err := h.SavingsGoalService.Create(r.Context(), principal(r).User.ID, service.NewSavingsGoal{
		Name:          req.Name,
		TargetAmount:  *req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    targetDate,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSavingsGoal(g))
}

// HandleUpdate applies a partial update. Completing a goal stamps completedAt
// and un-completing it clears it again.
//
//	@Summary	Update savings goal
//	@Tags		Savings goals
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string									true	"Savings goal ID"
//	@Param		request	body		inversiesdk.UpdateSavingsGoalRequest	true	"Fields to change"
//	@Success	200		{object}	inversiesdk.SavingsGoal
//	@Failure	400		{object}	inversiesdk.ErrorResponse
//	@Failure	401		{object}	inversiesdk.ErrorResponse
//	@Failure	404		{object}	inversiesdk.ErrorResponse
//	@Router		/api/savings-goals/{id} [put].
func (h *SavingsGoalsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req inversiesdk.UpdateSavingsGoalRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}
	targetDate, err := optionalDate(req.TargetDate)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	g, err := h.SavingsGoalService.Update(r.Context(), principal(r).User.ID, r.PathValue("id"), domain.SavingsGoalPatch{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    targetDate,
		ImageURL:      req.ImageURL,
		IsCompleted:   req.IsCompleted,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSavingsGoal(g))
}

// HandleDelete removes a savings goal.
//
//	@Summary	Delete savings goal
//	@Tags		Savings goals
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Savings goal ID"
//	@Success	200	{object}	inversiesdk.MessageResponse
//	@Failure	401	{object}	inversiesdk.ErrorResponse
//	@Failure	404	{object}	inversiesdk.ErrorResponse
//	@Router		/api/savings-goals/{id} [delete].
func (h *SavingsGoalsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.SavingsGoalService.Delete(r.Context(), principal(r).User.ID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, inversiesdk.MessageResponse{Message: "Savings goal deleted"})
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := service.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
