package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT customer_id, customer_name, phone_number, email, id_proof, created_at FROM customers ORDER BY customer_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.CustomerName, &c.PhoneNumber, &c.Email, &c.IDProof, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT customer_id, customer_name, phone_number, email, id_proof, created_at FROM customers WHERE customer_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.CustomerName, &c.PhoneNumber, &c.Email, &c.IDProof, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Customer not found")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (customer_name, phone_number, email, id_proof) VALUES ($1, $2, $3, $4) RETURNING customer_id, created_at`
	return r.db.QueryRowContext(ctx, query, c.CustomerName, c.PhoneNumber, c.Email, c.IDProof).Scan(&c.ID, &c.CreatedAt)
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET customer_name=$1, phone_number=$2, email=$3, id_proof=$4 WHERE customer_id=$5`
	res, err := r.db.ExecContext(ctx, query, c.CustomerName, c.PhoneNumber, c.Email, c.IDProof, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("Customer not found")
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE customer_id = $1`, id)
	return err
}
