package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
)

type inventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) List(ctx context.Context) ([]domain.InventoryStatus, error) {
	query := `SELECT i.product_id, p.product_name, i.quantity_available, i.quantity_rented, i.quantity_washing, i.quantity_damaged, i.last_updated
	          FROM inventory_status i
	          JOIN products p ON i.product_id = p.product_id
	          ORDER BY p.product_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []domain.InventoryStatus
	for rows.Next() {
		var s domain.InventoryStatus
		if err := rows.Scan(&s.ProductID, &s.ProductName, &s.QuantityAvailable, &s.QuantityRented, &s.QuantityWashing, &s.QuantityDamaged, &s.LastUpdated); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

func (r *inventoryRepository) GetStatus(ctx context.Context, productID int64) (*domain.InventoryStatus, error) {
	s := &domain.InventoryStatus{}
	query := `SELECT i.product_id, p.product_name, i.quantity_available, i.quantity_rented, i.quantity_washing, i.quantity_damaged, i.last_updated
	          FROM inventory_status i
	          JOIN products p ON i.product_id = p.product_id
	          WHERE i.product_id = $1`
	err := r.db.QueryRowContext(ctx, query, productID).Scan(&s.ProductID, &s.ProductName, &s.QuantityAvailable, &s.QuantityRented, &s.QuantityWashing, &s.QuantityDamaged, &s.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// BookedQuantity runs the overlap query behind the availability check. Two
// inclusive ranges [a,b] and [c,d] intersect iff a <= d AND c <= b.
func (r *inventoryRepository) BookedQuantity(ctx context.Context, productID int64, startDate, endDate string) (int, error) {
	var booked sql.NullInt64
	query := `SELECT SUM(bi.quantity)
	          FROM booking_items bi
	          JOIN bookings b ON bi.booking_id = b.booking_id
	          WHERE bi.product_id = $1
	          AND b.booking_status IN ('Booked', 'Active')
	          AND b.rental_start_date <= $2 AND b.rental_end_date >= $3`
	err := r.db.QueryRowContext(ctx, query, productID, endDate, startDate).Scan(&booked)
	if err != nil {
		return 0, err
	}
	return int(booked.Int64), nil
}
