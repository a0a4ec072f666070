package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// CreateVehicleRequest запрос на регистрацию автомобиля
type CreateVehicleRequest struct {
	LicensePlate string `json:"licensePlate"`
	Model        string `json:"model"`
	Color        string `json:"color"`
	OwnerID      int64  `json:"ownerId"`
}

// ToDomainVehicle конвертирует request в domain модель, номер приводится к верхнему регистру
func (r *CreateVehicleRequest) ToDomainVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		LicensePlate: strings.ToUpper(strings.TrimSpace(r.LicensePlate)),
		Model:        strings.TrimSpace(r.Model),
		Color:        strings.TrimSpace(r.Color),
		OwnerID:      r.OwnerID,
	}
}

// VehicleResponse ответ с данными автомобиля
type VehicleResponse struct {
	ID           int64     `json:"id"`
	LicensePlate string    `json:"licensePlate"`
	Model        string    `json:"model"`
	Color        string    `json:"color"`
	OwnerID      int64     `json:"ownerId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromDomainVehicle конвертирует domain модель в DTO
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}

	return &VehicleResponse{
		ID:           v.ID,
		LicensePlate: v.LicensePlate,
		Model:        v.Model,
		Color:        v.Color,
		OwnerID:      v.OwnerID,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
