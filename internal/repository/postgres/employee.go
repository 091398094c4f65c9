package postgres

import (
	"context"
	"database/sql"

	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
)

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT employee_id, employee_name, created_at FROM employees ORDER BY employee_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.EmployeeName, &e.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (employee_name) VALUES ($1) RETURNING employee_id, created_at`
	return r.db.QueryRowContext(ctx, query, e.EmployeeName).Scan(&e.ID, &e.CreatedAt)
}
