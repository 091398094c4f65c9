package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "Available"
	ProductStatusRetired   ProductStatus = "Retired"
)

type Product struct {
	ID                int64           `json:"product_id"`
	ProductName       string          `json:"product_name"`
	Barcode           *string         `json:"barcode,omitempty"`
	TotalQuantity     int             `json:"total_quantity"`
	RentalPrice       decimal.Decimal `json:"rental_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	StorageLocationID *int64          `json:"storage_location_id,omitempty"`
	Status            ProductStatus   `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`

	// Joined for read endpoints.
	LocationName      string `json:"location_name,omitempty"`
	QuantityAvailable int    `json:"quantity_available"`
	QuantityRented    int    `json:"quantity_rented"`
	QuantityWashing   int    `json:"quantity_washing"`
	QuantityDamaged   int    `json:"quantity_damaged"`
}
