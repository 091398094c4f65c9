package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
)

type saleRepository struct {
	db *sql.DB
}

func NewSaleRepository(db *sql.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	query := `SELECT s.sale_id, s.product_id, p.product_name, s.quantity, s.sale_price, s.total_amount,
	                 s.customer_id, s.employee_id, s.notes, s.sale_date,
	                 COALESCE(c.customer_name, ''), COALESCE(e.employee_name, '')
	          FROM sales s
	          JOIN products p ON s.product_id = p.product_id
	          LEFT JOIN customers c ON s.customer_id = c.customer_id
	          LEFT JOIN employees e ON s.employee_id = e.employee_id
	          ORDER BY s.sale_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.ProductName, &s.Quantity, &s.SalePrice, &s.TotalAmount,
			&s.CustomerID, &s.EmployeeID, &s.Notes, &s.SaleDate,
			&s.CustomerName, &s.EmployeeName); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// Create permanently removes the sold units from the rental pool: both the
// ledger's available count and the product's total_quantity shrink together,
// preserving the conservation invariant after the debit.
func (r *saleRepository) Create(ctx context.Context, s *domain.Sale, rev *domain.RevenueLog) error {
	return runInTx(r.db, func(tx *sql.Tx) error {
		var available int
		err := tx.QueryRowContext(ctx,
			`SELECT quantity_available FROM inventory_status WHERE product_id = $1`, s.ProductID).
			Scan(&available)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("Product not found")
		}
		if err != nil {
			return err
		}
		if available < s.Quantity {
			return apperr.InsufficientInventory("Insufficient inventory")
		}

		err = tx.QueryRowContext(ctx,
			`INSERT INTO sales (product_id, quantity, sale_price, total_amount, customer_id, employee_id, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING sale_id, sale_date`,
			s.ProductID, s.Quantity, s.SalePrice, s.TotalAmount, s.CustomerID, s.EmployeeID, s.Notes).
			Scan(&s.ID, &s.SaleDate)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE inventory_status SET quantity_available = quantity_available - $1, last_updated = NOW() WHERE product_id = $2`,
			s.Quantity, s.ProductID)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE products SET total_quantity = total_quantity - $1 WHERE product_id = $2`,
			s.Quantity, s.ProductID)
		if err != nil {
			return err
		}

		rev.SaleID = &s.ID
		_, err = tx.ExecContext(ctx,
			`INSERT INTO revenue_logs (log_date, booking_id, sale_id, revenue_type, amount) VALUES (CURRENT_DATE, $1, $2, $3, $4)`,
			rev.BookingID, rev.SaleID, rev.RevenueType, rev.Amount)
		return err
	})
}
