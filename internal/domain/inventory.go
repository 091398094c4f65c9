package domain

import "time"

// InventoryStatus is the per-product ledger partitioning total owned stock.
// Invariant: available + rented + washing + damaged == product.total_quantity.
// Sales decrement available and total_quantity together.
type InventoryStatus struct {
	ProductID         int64     `json:"product_id"`
	ProductName       string    `json:"product_name,omitempty"`
	QuantityAvailable int       `json:"quantity_available"`
	QuantityRented    int       `json:"quantity_rented"`
	QuantityWashing   int       `json:"quantity_washing"`
	QuantityDamaged   int       `json:"quantity_damaged"`
	LastUpdated       time.Time `json:"last_updated"`
}

// AvailabilityResult reports how many units are free to book over a date
// range after subtracting overlapping reservations. Advisory only: nothing
// locks the ledger row between this check and a booking commit.
type AvailabilityResult struct {
	Available         bool   `json:"available"`
	AvailableQuantity int    `json:"available_quantity"`
	Message           string `json:"message,omitempty"`
}
