package create_ticket

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на создание тикета
type Request struct {
	VehicleID int64 // ID автомобиля
	MeterID   int64 // ID паркомата
}

// Response модель ответа с созданным тикетом
type Response struct {
	ID                 int64
	TotalAmountCharged float64 // 0 до оплаты
	StartTime          time.Time
	EndTime            *time.Time
	PaymentStatus      domain.PaymentStatus

	Meter   domain.MeterSnapshot
	Vehicle domain.VehicleSnapshot

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(t *domain.Ticket) *Response {
	return &Response{
		ID:                 t.ID,
		TotalAmountCharged: t.TotalAmountCharged,
		StartTime:          t.StartTime,
		EndTime:            t.EndTime,
		PaymentStatus:      t.PaymentStatus,
		Meter:              t.Meter,
		Vehicle:            t.Vehicle,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}
