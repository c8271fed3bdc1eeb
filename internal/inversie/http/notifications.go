package http

import (
	"net/http"

	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/pkg/httpx"
	"github.com/aussiebroadwan/inversie/pkg/inversiesdk"
)

type NotificationsHandler struct {
	NotificationService *service.NotificationService
}

// HandleList returns the caller's notifications, newest first.
//
//	@Summary	List notifications
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		inversiesdk.Notification
//	@Failure	401	{object}	inversiesdk.ErrorResponse
//	@Router		/api/notifications [get].
func (h *NotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.NotificationService.List(r.Context(), principal(r).User.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(list, toNotification))
}

// HandleMarkRead flags one notification as read.
//
//	@Summary	Mark notification read
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Notification ID"
//	@Success	200	{object}	inversiesdk.MessageResponse
//	@Failure	401	{object}	inversiesdk.ErrorResponse
//	@Failure	404	{object}	inversiesdk.ErrorResponse
//	@Router		/api/notifications/{id}/read [put].
func (h *NotificationsHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.NotificationService.MarkRead(r.Context(), principal(r).User.ID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, inversiesdk.MessageResponse{Message: "Notification marked as read"})
}

// HandleMarkAllRead flags every notification of the caller as read.
//
//	@Summary	Mark all notifications read
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	inversiesdk.MessageResponse
//	@Failure	401	{object}	inversiesdk.ErrorResponse
//	@Router		/api/notifications/read-all [put].
func (h *NotificationsHandler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	if _, err := h.NotificationService.MarkAllRead(r.Context(), principal(r).User.ID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, inversiesdk.MessageResponse{Message: "All notifications marked as read"})
}
