package domain

import "time"

type Customer struct {
	ID           int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	PhoneNumber  string    `json:"phone_number"`
	Email        *string   `json:"email,omitempty"`
	IDProof      *string   `json:"id_proof,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Employee struct {
	ID           int64     `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type StorageLocation struct {
	ID           int64     `json:"location_id"`
	LocationName string    `json:"location_name"`
	CreatedAt    time.Time `json:"created_at"`
}
