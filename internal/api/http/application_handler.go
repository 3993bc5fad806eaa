package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/service"

	"github.com/gorilla/mux"
)

type ApplicationHandler struct {
	svc service.ApplicationService
}

func NewApplicationHandler(svc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type submitApplicationRequest struct {
	PropertyID   int64    `json:"propertyId"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	PhoneNumber  string   `json:"phone_number"`
	IDNumber     string   `json:"id_number"`
	Age          int32    `json:"age"`
	JobTitle     string   `json:"job_title"`
	IncomeCents  int64    `json:"income_cents"`
	IncomeSource string   `json:"income_source"`
	LeaseAgreed  bool     `json:"lease_agreed"`
	Documents    []string `json:"documents"`
	Notes        string   `json:"notes"`
}

type decideApplicationRequest struct {
	Status domain.ApplicationStatus `json:"status"`
	Notes  string                   `json:"notes"`
}

type decideApplicationResponse struct {
	Application *domain.Application `json:"application"`
	Rental      *domain.Rental      `json:"rental,omitempty"`
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	app, err := h.svc.Submit(r.Context(), PrincipalID(r.Context()), service.SubmitApplicationInput{
		PropertyID:   req.PropertyID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		IDNumber:     req.IDNumber,
		Age:          req.Age,
		JobTitle:     req.JobTitle,
		IncomeCents:  req.IncomeCents,
		IncomeSource: req.IncomeSource,
		LeaseAgreed:  req.LeaseAgreed,
		Documents:    req.Documents,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, app, http.StatusCreated)
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.List(r.Context(), PrincipalID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	writeJSON(w, apps, http.StatusOK)
}

func (h *ApplicationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, errorResponse{Error: "invalid application id"}, http.StatusBadRequest)
		return
	}

	var req decideApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	app, rental, err := h.svc.Decide(r.Context(), PrincipalID(r.Context()), id, req.Status, req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, decideApplicationResponse{Application: app, Rental: rental}, http.StatusOK)
}
