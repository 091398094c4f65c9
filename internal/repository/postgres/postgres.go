package postgres

import (
	"database/sql"

	"github.com/500AN/rental-system/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.EmployeeRepository
	repository.LocationRepository
	repository.ProductRepository
	repository.InventoryRepository
	repository.BookingRepository
	repository.WashingRepository
	repository.DamageRepository
	repository.SaleRepository
	repository.RevenueRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		CustomerRepository:  NewCustomerRepository(db),
		EmployeeRepository:  NewEmployeeRepository(db),
		LocationRepository:  NewLocationRepository(db),
		ProductRepository:   NewProductRepository(db),
		InventoryRepository: NewInventoryRepository(db),
		BookingRepository:   NewBookingRepository(db),
		WashingRepository:   NewWashingRepository(db),
		DamageRepository:    NewDamageRepository(db),
		SaleRepository:      NewSaleRepository(db),
		RevenueRepository:   NewRevenueRepository(db),
	}
}

// runInTx executes fn inside a transaction, rolling back on any error.
func runInTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
