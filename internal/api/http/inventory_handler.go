package http

import (
	"net/http"
	"strconv"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/service"
)

type InventoryHandler struct {
	inventory service.InventoryService
}

func NewInventoryHandler(inventory service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventory.ListInventory(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	productID, err := strconv.ParseInt(q.Get("product_id"), 10, 64)
	if err != nil {
		respondError(w, apperr.Validation("product_id is required"))
		return
	}
	quantity, err := strconv.Atoi(q.Get("quantity"))
	if err != nil {
		respondError(w, apperr.Validation("quantity is required"))
		return
	}

	result, serr := h.inventory.CheckAvailability(r.Context(), productID, quantity, q.Get("start_date"), q.Get("end_date"))
	if serr != nil {
		respondError(w, serr)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
