package http

import (
	"encoding/json"
	"net/http"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/service"
)

type ProfileHandler struct {
	svc service.ProfileService
}

func NewProfileHandler(svc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type assignRoleRequest struct {
	Role domain.Role `json:"role"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Get(r.Context(), PrincipalID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, profile, http.StatusOK)
}

// AssignRole sets the caller's role. The role is assigned at most once;
// a second attempt conflicts.
func (h *ProfileHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	var req assignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	profile, err := h.svc.AssignRole(r.Context(), PrincipalID(r.Context()), req.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, profile, http.StatusOK)
}
