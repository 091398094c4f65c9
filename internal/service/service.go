package service

import (
	"context"

	"github.com/500AN/rental-system/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateBookingInput is the POST /bookings payload.
type CreateBookingInput struct {
	BookingNumber        string               `json:"booking_number"`
	CustomerID           int64                `json:"customer_id"`
	EmployeeID           int64                `json:"employee_id"`
	RentalStartDate      string               `json:"rental_start_date"`
	RentalEndDate        string               `json:"rental_end_date"`
	Items                []domain.BookingItem `json:"items"`
	AdvanceAmount        decimal.Decimal      `json:"advance_amount"`
	AdvancePaymentMethod string               `json:"advance_payment_method"`
}

// PickupInput is the PUT /bookings/{id}/pickup payload.
type PickupInput struct {
	FinalAmount     decimal.Decimal      `json:"final_amount"`
	PaymentMethod   string               `json:"payment_method"`
	AdditionalItems []domain.BookingItem `json:"additional_items"`
}

// ReturnInput is the PUT /bookings/{id}/return payload.
type ReturnInput struct {
	ItemsAction []domain.ItemReturn `json:"items_action"`
}

// SaleInput is the POST /sales payload.
type SaleInput struct {
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	CustomerID *int64          `json:"customer_id"`
	EmployeeID *int64          `json:"employee_id"`
	Notes      *string         `json:"notes"`
}

type BookingService interface {
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	ListDueToday(ctx context.Context) ([]domain.Booking, error)
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	CreateBooking(ctx context.Context, in CreateBookingInput) (*domain.Booking, error)
	PickupBooking(ctx context.Context, id int64, in PickupInput) (*domain.Booking, error)
	ReturnBooking(ctx context.Context, id int64, in ReturnInput) error
}

type InventoryService interface {
	ListInventory(ctx context.Context) ([]domain.InventoryStatus, error)
	// CheckAvailability is advisory: nothing locks the ledger row between the
	// check and a later booking commit.
	CheckAvailability(ctx context.Context, productID int64, quantity int, startDate, endDate string) (*domain.AvailabilityResult, error)
}

type SaleService interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
	CreateSale(ctx context.Context, in SaleInput) (*domain.Sale, error)
}

type WashingService interface {
	ListWashing(ctx context.Context) ([]domain.WashingItem, error)
	ListWashingAlerts(ctx context.Context) ([]domain.WashingItem, error)
	ReturnFromWashing(ctx context.Context, id int64) error
}

type DamageService interface {
	ListDamaged(ctx context.Context) ([]domain.DamagedItem, error)
	ReportDamage(ctx context.Context, productID int64, quantity int, details string) (*domain.DamagedItem, error)
	RepairDamaged(ctx context.Context, id int64) error
}

type RevenueService interface {
	DailyReport(ctx context.Context, date string) (*domain.DailyRevenueReport, error)
	MonthlyReport(ctx context.Context, year, month int) (*domain.MonthlyRevenueReport, error)
	RecentLogs(ctx context.Context) ([]domain.RevenueLog, error)
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
}

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	CreateEmployee(ctx context.Context, e *domain.Employee) error
}

type LocationService interface {
	ListLocations(ctx context.Context) ([]domain.StorageLocation, error)
	CreateLocation(ctx context.Context, l *domain.StorageLocation) error
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListAvailableProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, p *domain.Product) error
}

// BookingEvent carries everything a notification template needs. Dispatch is
// fire-and-forget after the transaction commits; delivery failures are logged
// and never surface to the caller.
type BookingEvent struct {
	Type        string
	Booking     *domain.Booking
	Customer    *domain.Customer
	ItemsAction []domain.ItemReturn
}

const (
	EventBookingCreated = "booking"
	EventPickup         = "pickup"
	EventReturn         = "return"
)

type Notifier interface {
	SendBookingNotification(ctx context.Context, event BookingEvent) error
	SendWashingAlert(ctx context.Context, items []domain.WashingItem) error
	SendReturnReminder(ctx context.Context, booking *domain.Booking) error
}
