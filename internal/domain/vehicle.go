package domain

import "time"

// Vehicle is a car registered by an owner
type Vehicle struct {
	ID           int64
	LicensePlate string
	Model        string
	Color        string
	OwnerID      int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot returns the value copy embedded into a ticket
func (v *Vehicle) Snapshot(owner *Owner) VehicleSnapshot {
	snapshot := VehicleSnapshot{
		ID:           v.ID,
		LicensePlate: v.LicensePlate,
		Model:        v.Model,
		Color:        v.Color,
		Owner:        OwnerSnapshot{ID: v.OwnerID},
	}
	if owner != nil {
		snapshot.Owner = OwnerSnapshot{
			ID:    owner.ID,
			Name:  owner.Name,
			TaxID: owner.TaxID,
			Email: owner.Email,
			Phone: owner.Phone,
		}
	}
	return snapshot
}
