package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lakeviewsainik/hostel-gobackend/internal/models"
	"github.com/lakeviewsainik/hostel-gobackend/internal/services"
	"github.com/lakeviewsainik/hostel-gobackend/internal/storage"
)

// ResidentHandler handles HTTP requests for residents and their bills.
type ResidentHandler struct {
	service *services.ResidentService
}

func NewResidentHandler(service *services.ResidentService) *ResidentHandler {
	return &ResidentHandler{service: service}
}

// ListResidents handles GET /api/residents
func (h *ResidentHandler) ListResidents(w http.ResponseWriter, r *http.Request) {
	residents, err := h.service.ListResidents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, residents)
}

// GetResident handles GET /api/residents/{residentID}
func (h *ResidentHandler) GetResident(w http.ResponseWriter, r *http.Request) {
	resident, err := h.service.GetResident(r.Context(), mux.Vars(r)["residentID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resident)
}

// CreateResident handles POST /api/residents
func (h *ResidentHandler) CreateResident(w http.ResponseWriter, r *http.Request) {
	var create models.ResidentCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resident, err := h.service.CreateResident(r.Context(), create)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resident)
}

// UpdateResident handles PUT /api/residents/{residentID}
func (h *ResidentHandler) UpdateResident(w http.ResponseWriter, r *http.Request) {
	var update models.ResidentUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resident, err := h.service.UpdateResident(r.Context(), mux.Vars(r)["residentID"], update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resident)
}

// DeleteResident handles DELETE /api/residents/{residentID}
func (h *ResidentHandler) DeleteResident(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteResident(r.Context(), mux.Vars(r)["residentID"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpsertBill handles POST /api/residents/{residentID}/bills
func (h *ResidentHandler) UpsertBill(w http.ResponseWriter, r *http.Request) {
	var bill models.Bill
	if err := json.NewDecoder(r.Body).Decode(&bill); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resident, err := h.service.UpsertBill(r.Context(), mux.Vars(r)["residentID"], bill)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resident)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, "Resident not found", http.StatusNotFound)
	default:
		slog.Error("request failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
