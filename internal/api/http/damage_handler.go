package http

import (
	"net/http"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/service"
)

type DamageHandler struct {
	damage service.DamageService
}

func NewDamageHandler(damage service.DamageService) *DamageHandler {
	return &DamageHandler{damage: damage}
}

func (h *DamageHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.damage.ListDamaged(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *DamageHandler) Report(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ProductID     int64  `json:"product_id"`
		Quantity      int    `json:"quantity"`
		DamageDetails string `json:"damage_details"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, err)
		return
	}
	item, err := h.damage.ReportDamage(r.Context(), in.ProductID, in.Quantity, in.DamageDetails)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *DamageHandler) Repair(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, apperr.Validation("Invalid damaged item id"))
		return
	}
	if err := h.damage.RepairDamaged(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Item marked as repaired"})
}
