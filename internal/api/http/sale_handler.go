package http

import (
	"net/http"

	"github.com/500AN/rental-system/internal/service"
)

type SaleHandler struct {
	sales service.SaleService
}

func NewSaleHandler(sales service.SaleService) *SaleHandler {
	return &SaleHandler{sales: sales}
}

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales.ListSales(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sales)
}

func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.SaleInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, err)
		return
	}
	sale, err := h.sales.CreateSale(r.Context(), in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, sale)
}
