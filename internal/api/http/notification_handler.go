package http

import (
	"net/http"
	"strconv"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/service"

	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

type listNotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Total         int32                 `json:"total"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := int32(1)
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		page = int32(v)
	}
	pageSize := int32(20)
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil && v > 0 {
		pageSize = int32(v)
	}

	notes, total, err := h.svc.List(r.Context(), PrincipalID(r.Context()), page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if notes == nil {
		notes = []domain.Notification{}
	}
	writeJSON(w, listNotificationsResponse{Notifications: notes, Total: total}, http.StatusOK)
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, errorResponse{Error: "invalid notification id"}, http.StatusBadRequest)
		return
	}

	if err := h.svc.MarkAsRead(r.Context(), PrincipalID(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
