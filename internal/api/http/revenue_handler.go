package http

import (
	"net/http"
	"strconv"

	"github.com/500AN/rental-system/internal/service"
)

type RevenueHandler struct {
	revenue service.RevenueService
}

func NewRevenueHandler(revenue service.RevenueService) *RevenueHandler {
	return &RevenueHandler{revenue: revenue}
}

func (h *RevenueHandler) Daily(w http.ResponseWriter, r *http.Request) {
	report, err := h.revenue.DailyReport(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (h *RevenueHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	month, _ := strconv.Atoi(q.Get("month"))

	report, err := h.revenue.MonthlyReport(r.Context(), year, month)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (h *RevenueHandler) All(w http.ResponseWriter, r *http.Request) {
	logs, err := h.revenue.RecentLogs(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, logs)
}
