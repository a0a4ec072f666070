package domain

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Address is a postal address resolved from a zip code
type Address struct {
	ZipCode      string `json:"zipCode"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// Rate is the two-tier hourly price of a meter
type Rate struct {
	FirstHour      float64 `json:"firstHour"`
	AdditionalHour float64 `json:"additionalHour"`
}

// IsValid returns true if both tiers are positive
func (r Rate) IsValid() bool {
	return r.FirstHour > 0 && r.AdditionalHour > 0
}

// OperatingHours is the daily open/close window of a meter
type OperatingHours struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// ParkingMeter represents a parking location with a fixed number of spaces
type ParkingMeter struct {
	ID             int64
	OperatingHours OperatingHours
	Rate           Rate
	TotalSpaces    int
	Address        Address

	// Version is compared and incremented on every update
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot returns the value copy embedded into a ticket at creation time
func (m *ParkingMeter) Snapshot() MeterSnapshot {
	return MeterSnapshot{
		ID:             m.ID,
		OperatingHours: m.OperatingHours,
		Rate:           m.Rate,
		TotalSpaces:    m.TotalSpaces,
		Address:        m.Address,
		Version:        m.Version,
	}
}

// LocalityFilter selects meters by exact city and/or neighborhood
type LocalityFilter struct {
	City         *string
	Neighborhood *string
}

// IsEmpty returns true if neither city nor neighborhood is set
func (f LocalityFilter) IsEmpty() bool {
	return (f.City == nil || *f.City == "") && (f.Neighborhood == nil || *f.Neighborhood == "")
}
