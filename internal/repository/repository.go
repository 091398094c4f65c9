package repository

import (
	"context"

	"github.com/500AN/rental-system/internal/domain"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) error
}

type LocationRepository interface {
	List(ctx context.Context) ([]domain.StorageLocation, error)
	Create(ctx context.Context, l *domain.StorageLocation) error
}

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListAvailable(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	// Create seeds the inventory ledger row atomically with the product.
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
}

type InventoryRepository interface {
	List(ctx context.Context) ([]domain.InventoryStatus, error)
	GetStatus(ctx context.Context, productID int64) (*domain.InventoryStatus, error)
	// BookedQuantity sums line-item quantities of Booked/Active bookings whose
	// inclusive date range intersects [startDate, endDate].
	BookedQuantity(ctx context.Context, productID int64, startDate, endDate string) (int, error)
}

type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	ListDueToday(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByNumber(ctx context.Context, number string) (*domain.Booking, error)
	Items(ctx context.Context, bookingID int64) ([]domain.BookingItem, error)
	// LastNumberLike returns the highest booking_number matching the given
	// LIKE pattern, or "" when none exists.
	LastNumberLike(ctx context.Context, pattern string) (string, error)

	// Create persists booking + items, and when payment is non-nil the payment
	// and its revenue entry, in one transaction.
	Create(ctx context.Context, b *domain.Booking, payment *domain.Payment, rev *domain.RevenueLog) error
	// Pickup shifts available→rented for every item, inserts additional items
	// with the same shift, updates the booking row, and records the optional
	// final payment + revenue entry, in one transaction.
	Pickup(ctx context.Context, b *domain.Booking, additional []domain.BookingItem, payment *domain.Payment, rev *domain.RevenueLog) error
	// Return applies one disposition per item (rented→available/washing/damaged,
	// creating washing/damage records as needed) and completes the booking,
	// in one transaction.
	Return(ctx context.Context, bookingID int64, actions []domain.ItemReturn) error
}

type WashingRepository interface {
	ListActive(ctx context.Context) ([]domain.WashingItem, error)
	ListOverdue(ctx context.Context, thresholdDays int) ([]domain.WashingItem, error)
	// MarkReturned credits the ledger and closes the record. Guarded: a record
	// not in Washing status is rejected so a double call cannot double-credit.
	MarkReturned(ctx context.Context, id int64) error
}

type DamageRepository interface {
	ListActive(ctx context.Context) ([]domain.DamagedItem, error)
	// Report moves units available→damaged outside any booking.
	Report(ctx context.Context, d *domain.DamagedItem) error
	// MarkRepaired credits the ledger and closes the record. Guarded like
	// WashingRepository.MarkReturned.
	MarkRepaired(ctx context.Context, id int64) error
}

type SaleRepository interface {
	List(ctx context.Context) ([]domain.Sale, error)
	// Create debits available and total_quantity, inserts the sale and its
	// revenue entry, in one transaction. Fails when available < quantity.
	Create(ctx context.Context, s *domain.Sale, rev *domain.RevenueLog) error
}

type RevenueRepository interface {
	Daily(ctx context.Context, date string) (*domain.DailyRevenueReport, error)
	Monthly(ctx context.Context, year, month int) (*domain.MonthlyRevenueReport, error)
	ListRecent(ctx context.Context, limit int) ([]domain.RevenueLog, error)
}
