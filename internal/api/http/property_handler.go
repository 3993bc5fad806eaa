package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentora-backend/internal/domain"
	"rentora-backend/internal/service"

	"github.com/gorilla/mux"
)

type PropertyHandler struct {
	svc service.PropertyService
}

func NewPropertyHandler(svc service.PropertyService) *PropertyHandler {
	return &PropertyHandler{svc: svc}
}

type createPropertyRequest struct {
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	PriceCents int64    `json:"price_cents"`
	Bedrooms   int32    `json:"bedrooms"`
	Amenities  []string `json:"amenities"`
	Images     []string `json:"images"`
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	property := &domain.Property{
		Name:       req.Name,
		Location:   req.Location,
		PriceCents: req.PriceCents,
		Bedrooms:   req.Bedrooms,
		Amenities:  req.Amenities,
		Images:     req.Images,
	}
	if err := h.svc.Create(r.Context(), PrincipalID(r.Context()), property); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, property, http.StatusCreated)
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	properties, err := h.svc.List(r.Context(), PrincipalID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	writeJSON(w, properties, http.StatusOK)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, errorResponse{Error: "invalid property id"}, http.StatusBadRequest)
		return
	}

	property, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, property, http.StatusOK)
}
