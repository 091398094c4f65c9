package http

import (
	"net/http"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/service"
)

type WashingHandler struct {
	washing service.WashingService
}

func NewWashingHandler(washing service.WashingService) *WashingHandler {
	return &WashingHandler{washing: washing}
}

func (h *WashingHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.washing.ListWashing(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *WashingHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	items, err := h.washing.ListWashingAlerts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *WashingHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, apperr.Validation("Invalid washing item id"))
		return
	}
	if err := h.washing.ReturnFromWashing(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Item returned to inventory"})
}
