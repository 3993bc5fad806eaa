package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/service"

	"github.com/gorilla/mux"
)

type LeaseHandler struct {
	svc service.LeaseService
}

func NewLeaseHandler(svc service.LeaseService) *LeaseHandler {
	return &LeaseHandler{svc: svc}
}

type createLeaseRequest struct {
	TenantID      string `json:"tenantId"`
	ApplicationID int64  `json:"applicationId"`
	LeaseDocument string `json:"lease_document"`
}

type updateLeaseRequest struct {
	Action         string `json:"action"`
	SignedDocument string `json:"signed_document"`
}

func (h *LeaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	lease, err := h.svc.Create(r.Context(), PrincipalID(r.Context()), req.TenantID, req.ApplicationID, req.LeaseDocument)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, lease, http.StatusCreated)
}

func (h *LeaseHandler) List(w http.ResponseWriter, r *http.Request) {
	leases, err := h.svc.List(r.Context(), PrincipalID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if leases == nil {
		leases = []domain.LeaseWithApplication{}
	}
	writeJSON(w, leases, http.StatusOK)
}

func (h *LeaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, errorResponse{Error: "invalid lease id"}, http.StatusBadRequest)
		return
	}

	var req updateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	lease, err := h.svc.Update(r.Context(), PrincipalID(r.Context()), id, service.UpdateLeaseInput{
		Action:         req.Action,
		SignedDocument: req.SignedDocument,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, lease, http.StatusOK)
}
