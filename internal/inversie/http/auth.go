package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/pkg/httpx"
	"github.com/aussiebroadwan/inversie/pkg/inversiesdk"
	"github.com/aussiebroadwan/inversie/pkg/slogx"
)

type AuthHandler struct {
	SessionService *service.SessionService
}

// HandleLogin exchanges email and PIN for a session token.
//
//	@Summary		Log in
//	@Description	Exchanges email and PIN for an opaque bearer token valid for 30 minutes.
//	@Description	Unknown email and wrong PIN produce the same response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		inversiesdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	inversiesdk.LoginResponse
//	@Failure		400		{object}	inversiesdk.ErrorResponse	"Malformed request"
//	@Failure		401		{object}	inversiesdk.ErrorResponse	"Invalid email or PIN"
//	@Failure		429		{object}	inversiesdk.ErrorResponse	"Too many attempts"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req inversiesdk.LoginRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	login, err := h.SessionService.Authenticate(r.Context(), req.Email, req.PIN)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, inversiesdk.LoginResponse{
		Token:     login.Token,
		ExpiresAt: login.ExpiresAt,
		User:      toUser(login.User),
	})
}

// HandleLogout ends the caller's session.
//
//	@Summary	Log out
//	@Tags		Auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	inversiesdk.MessageResponse
//	@Failure	401	{object}	inversiesdk.ErrorResponse	"Session expired or invalid"
//	@Router		/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	if err := h.SessionService.TerminateSession(r.Context(), p.Session.ID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	slogx.FromContext(r.Context()).Info("logged out", "session_id", p.Session.ID)
	httpx.WriteJSON(w, http.StatusOK, inversiesdk.MessageResponse{Message: "Logged out"})
}

// HandleMe returns the authenticated user.
//
//	@Summary	Current user
//	@Tags		Auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	inversiesdk.User
//	@Failure	401	{object}	inversiesdk.ErrorResponse
//	@Router		/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, toUser(principal(r).User))
}

// HandleChangePIN replaces the caller's PIN after re-verifying the current one.
//
//	@Summary		Change PIN
//	@Description	The new PIN must be 4 to 6 digits.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		inversiesdk.ChangePINRequest	true	"Current and new PIN"
//	@Success		200		{object}	inversiesdk.MessageResponse
//	@Failure		400		{object}	inversiesdk.ErrorResponse	"New PIN violates the policy"
//	@Failure		401		{object}	inversiesdk.ErrorResponse	"Current PIN is incorrect"
//	@Failure		429		{object}	inversiesdk.ErrorResponse
//	@Router			/api/auth/pin/change [post].
func (h *AuthHandler) HandleChangePIN(w http.ResponseWriter, r *http.Request) {
	var req inversiesdk.ChangePINRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	err := h.SessionService.ChangePIN(r.Context(), principal(r), req.CurrentPIN, req.NewPIN)
	if errors.Is(err, service.ErrInvalidCredentials) {
		inversiesdk.ErrWrongCurrentPIN.WriteError(w)
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, inversiesdk.MessageResponse{Message: "PIN changed"})
}

// HandleUpdateSettings applies a partial preference update.
//
//	@Summary	Update settings
//	@Tags		Auth
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		inversiesdk.UpdateSettingsRequest	true	"Fields to change"
//	@Success	200		{object}	inversiesdk.User
//	@Failure	400		{object}	inversiesdk.ErrorResponse
//	@Failure	401		{object}	inversiesdk.ErrorResponse
//	@Router		/api/auth/settings [put].
func (h *AuthHandler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req inversiesdk.UpdateSettingsRequest
	if apiErr := decodeRequest(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	settings := domain.UserSettings{
		Language:          req.Language,
		HighContrast:      req.HighContrast,
		BiometricsEnabled: req.BiometricsEnabled,
	}
	if req.TextSize != nil {
		size, ok := domain.ParseTextSize(*req.TextSize)
		if !ok {
			inversiesdk.ErrValidation.WithMessage("textSize must be one of SMALL MEDIUM LARGE XLARGE").WriteError(w)
			return
		}
		settings.TextSize = &size
	}

	user, err := h.SessionService.UpdateSettings(r.Context(), principal(r).User.ID, settings)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}
