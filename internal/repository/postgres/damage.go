package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
)

type damageRepository struct {
	db *sql.DB
}

func NewDamageRepository(db *sql.DB) repository.DamageRepository {
	return &damageRepository{db: db}
}

func (r *damageRepository) ListActive(ctx context.Context) ([]domain.DamagedItem, error) {
	query := `SELECT d.damage_id, d.product_id, p.product_name, d.quantity, COALESCE(d.damage_details, ''), d.status, d.date_damaged, d.date_repaired
	          FROM damaged_items d
	          JOIN products p ON d.product_id = p.product_id
	          WHERE d.status = 'Damaged'
	          ORDER BY d.date_damaged DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.DamagedItem
	for rows.Next() {
		var d domain.DamagedItem
		if err := rows.Scan(&d.ID, &d.ProductID, &d.ProductName, &d.Quantity, &d.DamageDetails, &d.Status, &d.DateDamaged, &d.DateRepaired); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *damageRepository) Report(ctx context.Context, d *domain.DamagedItem) error {
	return runInTx(r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO damaged_items (product_id, quantity, damage_details) VALUES ($1, $2, $3) RETURNING damage_id, status, date_damaged`,
			d.ProductID, d.Quantity, d.DamageDetails).
			Scan(&d.ID, &d.Status, &d.DateDamaged)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE inventory_status SET quantity_available = quantity_available - $1, quantity_damaged = quantity_damaged + $1, last_updated = NOW() WHERE product_id = $2`,
			d.Quantity, d.ProductID)
		return err
	})
}

func (r *damageRepository) MarkRepaired(ctx context.Context, id int64) error {
	return runInTx(r.db, func(tx *sql.Tx) error {
		var productID int64
		var quantity int
		var status domain.DamageStatus
		err := tx.QueryRowContext(ctx,
			`SELECT product_id, quantity, status FROM damaged_items WHERE damage_id = $1`, id).
			Scan(&productID, &quantity, &status)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("Damaged item not found")
		}
		if err != nil {
			return err
		}
		// Status guard: re-applying the reversal would double-credit available.
		if status != domain.DamageStatusDamaged {
			return apperr.Conflict("Damaged item already repaired")
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE inventory_status SET quantity_damaged = quantity_damaged - $1, quantity_available = quantity_available + $1, last_updated = NOW() WHERE product_id = $2`,
			quantity, productID)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE damaged_items SET status='Repaired', date_repaired=NOW() WHERE damage_id=$1`, id)
		return err
	})
}
