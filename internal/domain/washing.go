package domain

import "time"

type WashingStatus string

const (
	WashingStatusWashing  WashingStatus = "Washing"
	WashingStatusReturned WashingStatus = "Returned"
)

type DamageStatus string

const (
	DamageStatusDamaged  DamageStatus = "Damaged"
	DamageStatusRepaired DamageStatus = "Repaired"
)

type WashingItem struct {
	ID           int64         `json:"washing_id"`
	ProductID    int64         `json:"product_id"`
	ProductName  string        `json:"product_name,omitempty"`
	Quantity     int           `json:"quantity"`
	Status       WashingStatus `json:"status"`
	DateSent     time.Time     `json:"date_sent"`
	DateReturned *time.Time    `json:"date_returned,omitempty"`

	// Derived from date_sent at read time; feeds the overdue alert list.
	DaysInWashing int `json:"days_in_washing"`
}

type DamagedItem struct {
	ID            int64        `json:"damage_id"`
	ProductID     int64        `json:"product_id"`
	ProductName   string       `json:"product_name,omitempty"`
	Quantity      int          `json:"quantity"`
	DamageDetails string       `json:"damage_details,omitempty"`
	Status        DamageStatus `json:"status"`
	DateDamaged   time.Time    `json:"date_damaged"`
	DateRepaired  *time.Time   `json:"date_repaired,omitempty"`
}
