package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a one-shot debit: the units leave the rental pool permanently.
type Sale struct {
	ID          int64           `json:"sale_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CustomerID  *int64          `json:"customer_id,omitempty"`
	EmployeeID  *int64          `json:"employee_id,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
	SaleDate    time.Time       `json:"sale_date"`

	CustomerName string `json:"customer_name,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
}
