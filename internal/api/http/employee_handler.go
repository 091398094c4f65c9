package http

import (
	"net/http"

	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/service"
)

type EmployeeHandler struct {
	employees service.EmployeeService
}

func NewEmployeeHandler(employees service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.ListEmployees(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var e domain.Employee
	if err := decodeJSON(r, &e); err != nil {
		respondError(w, err)
		return
	}
	if err := h.employees.CreateEmployee(r.Context(), &e); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, e)
}
