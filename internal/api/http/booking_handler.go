package http

import (
	"net/http"
	"strconv"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/service"
)

type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.ListBookings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) ListDueToday(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.ListDueToday(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, apperr.Validation("Invalid booking id"))
		return
	}
	booking, err := h.bookings.GetBooking(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateBookingInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, err)
		return
	}
	booking, err := h.bookings.CreateBooking(r.Context(), in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Pickup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, apperr.Validation("Invalid booking id"))
		return
	}
	var in service.PickupInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, err)
		return
	}
	booking, err := h.bookings.PickupBooking(r.Context(), id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, apperr.Validation("Invalid booking id"))
		return
	}
	var in service.ReturnInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, err)
		return
	}
	if err := h.bookings.ReturnBooking(r.Context(), id, in); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Booking completed"})
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
