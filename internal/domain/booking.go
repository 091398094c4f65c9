package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "Booked"
	BookingStatusActive    BookingStatus = "Active"
	BookingStatusCompleted BookingStatus = "Completed"
)

type PaymentType string

const (
	PaymentTypeAdvance PaymentType = "Advance"
	PaymentTypeFinal   PaymentType = "Final"
)

// ReturnAction is the caller-chosen disposition for a returned line item.
type ReturnAction string

const (
	ReturnActionReturn  ReturnAction = "return"
	ReturnActionWashing ReturnAction = "washing"
	ReturnActionDamaged ReturnAction = "damaged"
)

type Booking struct {
	ID                   int64           `json:"booking_id"`
	BookingNumber        string          `json:"booking_number"`
	CustomerID           int64           `json:"customer_id"`
	EmployeeID           int64           `json:"employee_id"`
	RentalStartDate      string          `json:"rental_start_date"`
	RentalEndDate        string          `json:"rental_end_date"`
	Status               BookingStatus   `json:"booking_status"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	AdvanceAmount        decimal.Decimal `json:"advance_amount"`
	FinalAmount          decimal.Decimal `json:"final_amount"`
	RemainingBalance     decimal.Decimal `json:"remaining_balance"`
	AdvancePaymentMethod *string         `json:"advance_payment_method,omitempty"`
	FinalPaymentMethod   *string         `json:"final_payment_method,omitempty"`
	PickupDate           *time.Time      `json:"pickup_date,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`

	// Joined for read endpoints.
	CustomerName string `json:"customer_name,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`

	Items []BookingItem `json:"items,omitempty"`
}

type BookingItem struct {
	ID                 int64           `json:"booking_item_id"`
	BookingID          int64           `json:"booking_id"`
	ProductID          int64           `json:"product_id"`
	ProductName        string          `json:"product_name,omitempty"`
	Quantity           int             `json:"quantity"`
	RentalDurationDays int             `json:"rental_duration_days"`
	DefaultRentalPrice decimal.Decimal `json:"default_rental_price"`
	AgreedRentalPrice  decimal.Decimal `json:"agreed_rental_price"`
	ItemTotalAmount    decimal.Decimal `json:"item_total_amount"`
}

type Payment struct {
	ID            int64           `json:"payment_id"`
	BookingID     int64           `json:"booking_id"`
	PaymentType   PaymentType     `json:"payment_type"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	PaymentDate   time.Time       `json:"payment_date"`
}

// ItemReturn pairs a booked product with its return disposition.
type ItemReturn struct {
	ProductID     int64        `json:"product_id"`
	Action        ReturnAction `json:"action"`
	DamageDetails string       `json:"damage_details,omitempty"`
}
