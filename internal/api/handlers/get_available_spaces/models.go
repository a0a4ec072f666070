package get_available_spaces

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	ticketModels "github.com/m04kA/SMC-ParkingService/internal/service/tickets/models"
	getAvailableSpaces "github.com/m04kA/SMC-ParkingService/internal/usecase/get_available_spaces"
)

// AvailableSpacesResponse HTTP response model
type AvailableSpacesResponse struct {
	MeterID   int64                        `json:"parkingMeterId"`
	Address   ticketModels.AddressResponse `json:"address"`
	Spaces    int                          `json:"totalSpaces"`
	Available int                          `json:"availableSpaces"`
	Date      string                       `json:"date"` // "2024-05-01"
}

// ToUseCaseRequest формирует запрос к use case
func ToUseCaseRequest(meterID int64, date time.Time) *getAvailableSpaces.Request {
	return &getAvailableSpaces.Request{
		MeterID: meterID,
		Date:    date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSpaces.Response) *AvailableSpacesResponse {
	return &AvailableSpacesResponse{
		MeterID:   resp.MeterID,
		Address:   ticketModels.FromDomainAddress(resp.Address),
		Spaces:    resp.Spaces,
		Available: resp.Available,
		Date:      resp.Date.Format(domain.DateFormat),
	}
}
