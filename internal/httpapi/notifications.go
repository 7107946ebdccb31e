package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"changemakers-go/internal/model"
)

type notificationList struct {
	Notifications []model.Notification `json:"notifications"`
	Unread        int                  `json:"unread"`
}

func (h *Handler) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get("unread"))
	respondJSON(w, h.logger, http.StatusOK, notificationList{
		Notifications: h.notifications.List(unreadOnly),
		Unread:        h.notifications.UnreadCount(),
	})
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.MarkRead(chi.URLParam(r, "id"))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, n)
}

func (h *Handler) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	changed := h.notifications.MarkAllRead()
	respondJSON(w, h.logger, http.StatusOK, map[string]int{"updated": changed})
}
