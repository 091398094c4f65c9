package http

import (
	"net/http"

	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/service"
)

type LocationHandler struct {
	locations service.LocationService
}

func NewLocationHandler(locations service.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locations.ListLocations(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, locations)
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var l domain.StorageLocation
	if err := decodeJSON(r, &l); err != nil {
		respondError(w, err)
		return
	}
	if err := h.locations.CreateLocation(r.Context(), &l); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, l)
}
