package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubhub-dev/clubhub/internal/domain/service"
)

type notificationHandler struct {
	notify *service.NotifyService
}

func newNotificationHandler(notify *service.NotifyService) *notificationHandler {
	return &notificationHandler{notify: notify}
}

func (h *notificationHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	notifications, err := h.notify.GetUserNotifications(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, notifications)
}

func (h *notificationHandler) markAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	notification, err := h.notify.MarkAsRead(r.Context(), chi.URLParam(r, "notificationID"), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, notification)
}
