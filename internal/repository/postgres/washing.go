package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
)

type washingRepository struct {
	db *sql.DB
}

func NewWashingRepository(db *sql.DB) repository.WashingRepository {
	return &washingRepository{db: db}
}

const washingSelect = `
	SELECT w.washing_id, w.product_id, p.product_name, w.quantity, w.status, w.date_sent, w.date_returned,
	       GREATEST(EXTRACT(DAY FROM NOW() - w.date_sent), 0)::int AS days_in_washing
	FROM washing_items w
	JOIN products p ON w.product_id = p.product_id`

func scanWashingRows(rows *sql.Rows) ([]domain.WashingItem, error) {
	defer rows.Close()
	var items []domain.WashingItem
	for rows.Next() {
		var w domain.WashingItem
		if err := rows.Scan(&w.ID, &w.ProductID, &w.ProductName, &w.Quantity, &w.Status, &w.DateSent, &w.DateReturned, &w.DaysInWashing); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

func (r *washingRepository) ListActive(ctx context.Context) ([]domain.WashingItem, error) {
	rows, err := r.db.QueryContext(ctx, washingSelect+` WHERE w.status = 'Washing' ORDER BY w.date_sent`)
	if err != nil {
		return nil, err
	}
	return scanWashingRows(rows)
}

func (r *washingRepository) ListOverdue(ctx context.Context, thresholdDays int) ([]domain.WashingItem, error) {
	query := washingSelect + ` WHERE w.status = 'Washing' AND NOW() - w.date_sent > make_interval(days => $1) ORDER BY w.date_sent`
	rows, err := r.db.QueryContext(ctx, query, thresholdDays)
	if err != nil {
		return nil, err
	}
	return scanWashingRows(rows)
}

func (r *washingRepository) MarkReturned(ctx context.Context, id int64) error {
	return runInTx(r.db, func(tx *sql.Tx) error {
		var productID int64
		var quantity int
		var status domain.WashingStatus
		err := tx.QueryRowContext(ctx,
			`SELECT product_id, quantity, status FROM washing_items WHERE washing_id = $1`, id).
			Scan(&productID, &quantity, &status)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("Washing item not found")
		}
		if err != nil {
			return err
		}
		// Status guard: re-applying the reversal would double-credit available.
		if status != domain.WashingStatusWashing {
			return apperr.Conflict("Washing item already returned")
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE inventory_status SET quantity_washing = quantity_washing - $1, quantity_available = quantity_available + $1, last_updated = NOW() WHERE product_id = $2`,
			quantity, productID)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE washing_items SET status='Returned', date_returned=NOW() WHERE washing_id=$1`, id)
		return err
	})
}
