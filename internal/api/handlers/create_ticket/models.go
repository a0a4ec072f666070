package create_ticket

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	ticketModels "github.com/m04kA/SMC-ParkingService/internal/service/tickets/models"
	createTicket "github.com/m04kA/SMC-ParkingService/internal/usecase/create_ticket"
)

// CreateTicketRequest HTTP request model
type CreateTicketRequest struct {
	VehicleID int64 `json:"vehicleId"`
	MeterID   int64 `json:"parkingMeterId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTicketRequest) ToUseCaseRequest() *createTicket.Request {
	return &createTicket.Request{
		VehicleID: r.VehicleID,
		MeterID:   r.MeterID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Формат совпадает с GET /tickets/{ticketId}.
func FromUseCaseResponse(resp *createTicket.Response) *ticketModels.TicketResponse {
	return ticketModels.FromDomainTicket(&domain.Ticket{
		ID:                 resp.ID,
		TotalAmountCharged: resp.TotalAmountCharged,
		StartTime:          resp.StartTime,
		EndTime:            resp.EndTime,
		PaymentStatus:      resp.PaymentStatus,
		Meter:              resp.Meter,
		Vehicle:            resp.Vehicle,
		CreatedAt:          resp.CreatedAt,
		UpdatedAt:          resp.UpdatedAt,
	})
}
