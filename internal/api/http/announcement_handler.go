package http

import (
	"encoding/json"
	"net/http"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/service"
)

type AnnouncementHandler struct {
	svc service.AnnouncementService
}

func NewAnnouncementHandler(svc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

type postAnnouncementRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (h *AnnouncementHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req postAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	ann, err := h.svc.Post(r.Context(), PrincipalID(r.Context()), req.Title, req.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, ann, http.StatusCreated)
}

func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if announcements == nil {
		announcements = []domain.Announcement{}
	}
	writeJSON(w, announcements, http.StatusOK)
}
