package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/500AN/rental-system/internal/domain"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListDueToday(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) GetByNumber(ctx context.Context, number string) (*domain.Booking, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Items(ctx context.Context, bookingID int64) ([]domain.BookingItem, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.BookingItem), args.Error(1)
}
func (m *MockBookingRepo) LastNumberLike(ctx context.Context, pattern string) (string, error) {
	args := m.Called(ctx, pattern)
	return args.String(0), args.Error(1)
}
func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking, payment *domain.Payment, rev *domain.RevenueLog) error {
	args := m.Called(ctx, b, payment, rev)
	return args.Error(0)
}
func (m *MockBookingRepo) Pickup(ctx context.Context, b *domain.Booking, additional []domain.BookingItem, payment *domain.Payment, rev *domain.RevenueLog) error {
	args := m.Called(ctx, b, additional, payment, rev)
	return args.Error(0)
}
func (m *MockBookingRepo) Return(ctx context.Context, bookingID int64, actions []domain.ItemReturn) error {
	args := m.Called(ctx, bookingID, actions)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInventoryRepo
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) List(ctx context.Context) ([]domain.InventoryStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.InventoryStatus), args.Error(1)
}
func (m *MockInventoryRepo) GetStatus(ctx context.Context, productID int64) (*domain.InventoryStatus, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryStatus), args.Error(1)
}
func (m *MockInventoryRepo) BookedQuantity(ctx context.Context, productID int64, startDate, endDate string) (int, error) {
	args := m.Called(ctx, productID, startDate, endDate)
	return args.Int(0), args.Error(1)
}

// MockSaleRepo
type MockSaleRepo struct {
	mock.Mock
}

func (m *MockSaleRepo) List(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Sale), args.Error(1)
}
func (m *MockSaleRepo) Create(ctx context.Context, s *domain.Sale, rev *domain.RevenueLog) error {
	args := m.Called(ctx, s, rev)
	return args.Error(0)
}

// MockWashingRepo
type MockWashingRepo struct {
	mock.Mock
}

func (m *MockWashingRepo) ListActive(ctx context.Context) ([]domain.WashingItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.WashingItem), args.Error(1)
}
func (m *MockWashingRepo) ListOverdue(ctx context.Context, thresholdDays int) ([]domain.WashingItem, error) {
	args := m.Called(ctx, thresholdDays)
	return args.Get(0).([]domain.WashingItem), args.Error(1)
}
func (m *MockWashingRepo) MarkReturned(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDamageRepo
type MockDamageRepo struct {
	mock.Mock
}

func (m *MockDamageRepo) ListActive(ctx context.Context) ([]domain.DamagedItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DamagedItem), args.Error(1)
}
func (m *MockDamageRepo) Report(ctx context.Context, d *domain.DamagedItem) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDamageRepo) MarkRepaired(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendBookingNotification(ctx context.Context, event BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockNotifier) SendWashingAlert(ctx context.Context, items []domain.WashingItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}
func (m *MockNotifier) SendReturnReminder(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
