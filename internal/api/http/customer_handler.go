package http

import (
	"net/http"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/service"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, apperr.Validation("Invalid customer id"))
		return
	}
	customer, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, err)
		return
	}
	if err := h.customers.CreateCustomer(r.Context(), &c); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, apperr.Validation("Invalid customer id"))
		return
	}
	var c domain.Customer
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, err)
		return
	}
	c.ID = id
	if err := h.customers.UpdateCustomer(r.Context(), &c); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, apperr.Validation("Invalid customer id"))
		return
	}
	if err := h.customers.DeleteCustomer(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted"})
}
