package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RevenueType string

const (
	RevenueTypeRentalAdvance RevenueType = "Rental_Advance"
	RevenueTypeRentalFinal   RevenueType = "Rental_Final"
	RevenueTypeSale          RevenueType = "Sale"
)

// RevenueLog entries are append-only; reporting aggregates over them and
// nothing ever updates or deletes a row.
type RevenueLog struct {
	ID          int64           `json:"log_id"`
	LogDate     string          `json:"log_date"`
	BookingID   *int64          `json:"booking_id,omitempty"`
	SaleID      *int64          `json:"sale_id,omitempty"`
	RevenueType RevenueType     `json:"revenue_type"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`

	BookingNumber string `json:"booking_number,omitempty"`
}

type RevenueBreakdown struct {
	RevenueType      RevenueType     `json:"revenue_type"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
}

type DailyRevenueReport struct {
	Date      string             `json:"date"`
	Breakdown []RevenueBreakdown `json:"breakdown"`
	Total     decimal.Decimal    `json:"total"`
}

type DailyTotal struct {
	LogDate    string          `json:"log_date"`
	DailyTotal decimal.Decimal `json:"daily_total"`
}

type MonthlyRevenueReport struct {
	Year           int                `json:"year"`
	Month          int                `json:"month"`
	Breakdown      []RevenueBreakdown `json:"breakdown"`
	Total          decimal.Decimal    `json:"total"`
	DailyBreakdown []DailyTotal       `json:"daily_breakdown"`
}
