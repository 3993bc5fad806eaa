package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/service"

	"github.com/gorilla/mux"
)

type MaintenanceHandler struct {
	svc service.MaintenanceService
}

func NewMaintenanceHandler(svc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc}
}

type submitMaintenanceRequest struct {
	PropertyID  int64                     `json:"propertyId"`
	RentalID    int64                     `json:"rentalId"`
	Description string                    `json:"description"`
	Category    string                    `json:"category"`
	Urgency     domain.MaintenanceUrgency `json:"urgency"`
	Photos      []string                  `json:"photos"`
}

type assignMaintenanceRequest struct {
	CaretakerID string `json:"caretakerId"`
}

type updateMaintenanceRequest struct {
	Status        domain.MaintenanceStatus `json:"status"`
	ProgressNotes []string                 `json:"progress_notes"`
	Photos        []string                 `json:"photos"`
}

func (h *MaintenanceHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	created, err := h.svc.Submit(r.Context(), PrincipalID(r.Context()), service.SubmitMaintenanceInput{
		PropertyID:  req.PropertyID,
		RentalID:    req.RentalID,
		Description: req.Description,
		Category:    req.Category,
		Urgency:     req.Urgency,
		Photos:      req.Photos,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, created, http.StatusCreated)
}

func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.svc.List(r.Context(), PrincipalID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if requests == nil {
		requests = []domain.MaintenanceRequest{}
	}
	writeJSON(w, requests, http.StatusOK)
}

func (h *MaintenanceHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, errorResponse{Error: "invalid request id"}, http.StatusBadRequest)
		return
	}

	var req assignMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	updated, err := h.svc.Assign(r.Context(), PrincipalID(r.Context()), id, req.CaretakerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, updated, http.StatusOK)
}

func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, errorResponse{Error: "invalid request id"}, http.StatusBadRequest)
		return
	}

	var req updateMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	updated, err := h.svc.Update(r.Context(), PrincipalID(r.Context()), id, service.UpdateMaintenanceInput{
		Status:        req.Status,
		ProgressNotes: req.ProgressNotes,
		Photos:        req.Photos,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, updated, http.StatusOK)
}

func (h *MaintenanceHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, errorResponse{Error: "invalid request id"}, http.StatusBadRequest)
		return
	}

	updated, err := h.svc.Reopen(r.Context(), PrincipalID(r.Context()), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, updated, http.StatusOK)
}
