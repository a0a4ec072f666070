package domain

import "time"

// PaymentStatus is the lifecycle state of a ticket
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "PENDING"
	StatusPaid      PaymentStatus = "PAID"
	StatusCancelled PaymentStatus = "CANCELLED"
)

// IsValid returns true for known statuses
func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true for statuses that allow no further transition
func (s PaymentStatus) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// MeterSnapshot is the copy of a parking meter stored on a ticket
type MeterSnapshot struct {
	ID             int64          `json:"id"`
	OperatingHours OperatingHours `json:"operatingHours"`
	Rate           Rate           `json:"rate"`
	TotalSpaces    int            `json:"totalSpaces"`
	Address        Address        `json:"address"`
	Version        int64          `json:"version"`
}

// VehicleSnapshot is the copy of a vehicle (and its owner) stored on a ticket
type VehicleSnapshot struct {
	ID           int64         `json:"id"`
	LicensePlate string        `json:"licensePlate"`
	Model        string        `json:"model"`
	Color        string        `json:"color"`
	Owner        OwnerSnapshot `json:"owner"`
}

// OwnerSnapshot is the owner part of a vehicle snapshot
type OwnerSnapshot struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"taxId"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Ticket is a single parking session
type Ticket struct {
	ID                 int64
	TotalAmountCharged float64
	StartTime          time.Time
	EndTime            *time.Time
	PaymentStatus      PaymentStatus

	// Snapshots taken at creation; billing always uses Meter.Rate
	Meter   MeterSnapshot
	Vehicle VehicleSnapshot

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true while the ticket occupies a space
func (t *Ticket) IsPending() bool {
	return t.PaymentStatus == StatusPending
}

// ElapsedMinutes returns whole minutes between start and now
func (t *Ticket) ElapsedMinutes(now time.Time) int64 {
	return int64(now.Sub(t.StartTime) / time.Minute)
}

// WithinGracePeriod returns true while the ticket may still be cancelled
func (t *Ticket) WithinGracePeriod(now time.Time) bool {
	return t.ElapsedMinutes(now) < int64(GracePeriod/time.Minute)
}

// TicketFilter describes a ticket range query. Nil fields are not applied.
// StartFrom is inclusive, StartTo is exclusive.
type TicketFilter struct {
	MeterIDs     []int64
	VehicleID    *int64
	LicensePlate *string
	Status       *PaymentStatus
	StartFrom    *time.Time
	StartTo      *time.Time
	Page         *Page
}
