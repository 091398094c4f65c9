package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/service"
)

type ProductHandler struct {
	products service.ProductService
}

func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListAvailableProducts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, apperr.Validation("Invalid product id"))
		return
	}
	product, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) GetByBarcode(w http.ResponseWriter, r *http.Request) {
	barcode := mux.Vars(r)["barcode"]
	product, err := h.products.GetProductByBarcode(r.Context(), barcode)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, err)
		return
	}
	if err := h.products.CreateProduct(r.Context(), &p); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, apperr.Validation("Invalid product id"))
		return
	}
	var p domain.Product
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, err)
		return
	}
	p.ID = id
	if err := h.products.UpdateProduct(r.Context(), &p); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}
