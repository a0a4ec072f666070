package domain

import "time"

// Owner is the person responsible for vehicles
type Owner struct {
	ID      int64
	Name    string
	TaxID   string
	Email   string
	Phone   string
	Address Address

	CreatedAt time.Time
	UpdatedAt time.Time
}
