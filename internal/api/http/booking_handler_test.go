package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/service"
)

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListDueToday(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) CreateBooking(ctx context.Context, in service.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) PickupBooking(ctx context.Context, id int64, in service.PickupInput) (*domain.Booking, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ReturnBooking(ctx context.Context, id int64, in service.ReturnInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func newBookingRouter(svc service.BookingService) http.Handler {
	return NewRouter(Services{Booking: svc})
}

func TestBookingHandler_Create(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("CreateBooking", mock.Anything, mock.Anything).
			Return(&domain.Booking{ID: 5, BookingNumber: "BK-20260901-001", Status: domain.BookingStatusBooked}, nil)

		body, _ := json.Marshal(map[string]any{
			"customer_id":       1,
			"employee_id":       2,
			"rental_start_date": "2026-09-01",
			"rental_end_date":   "2026-09-03",
			"items":             []map[string]any{{"product_id": 10, "quantity": 2}},
		})
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		newBookingRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got domain.Booking
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "BK-20260901-001", got.BookingNumber)
	})

	t.Run("ValidationMapsTo400", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("CreateBooking", mock.Anything, mock.Anything).
			Return(nil, apperr.Validation("All booking fields are required"))

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		newBookingRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var got map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "All booking fields are required", got["error"])
	})

	t.Run("ConflictMapsTo400", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("CreateBooking", mock.Anything, mock.Anything).
			Return(nil, apperr.Conflict("Booking number already exists"))

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		newBookingRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		svc := new(MockBookingService)
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{not json`)))
		rec := httptest.NewRecorder()
		newBookingRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})
}

func TestBookingHandler_Get(t *testing.T) {
	t.Run("NotFoundMapsTo404", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("GetBooking", mock.Anything, int64(99)).
			Return(nil, apperr.NotFound("Booking not found"))

		req := httptest.NewRequest(http.MethodGet, "/api/bookings/99", nil)
		rec := httptest.NewRecorder()
		newBookingRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("BadID", func(t *testing.T) {
		svc := new(MockBookingService)
		req := httptest.NewRequest(http.MethodGet, "/api/bookings/abc", nil)
		rec := httptest.NewRecorder()
		newBookingRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingHandler_Pickup(t *testing.T) {
	svc := new(MockBookingService)
	active := &domain.Booking{ID: 5, Status: domain.BookingStatusActive, TotalAmount: decimal.NewFromInt(790)}
	svc.On("PickupBooking", mock.Anything, int64(5), mock.Anything).Return(active, nil)

	body, _ := json.Marshal(map[string]any{"final_amount": 490, "payment_method": "UPI"})
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/5/pickup", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newBookingRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got domain.Booking
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.BookingStatusActive, got.Status)
}
