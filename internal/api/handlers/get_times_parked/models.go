package get_times_parked

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	getTimesParked "github.com/m04kA/SMC-ParkingService/internal/usecase/get_times_parked"
)

// TimesParkedResponse HTTP response model
type TimesParkedResponse struct {
	MeterID      int64  `json:"parkingMeterId"`
	LicensePlate string `json:"licensePlate"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate"` // включительно
	TimesParked  int    `json:"timesParked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimesParked.Response) *TimesParkedResponse {
	out := &TimesParkedResponse{
		MeterID:      resp.MeterID,
		LicensePlate: resp.LicensePlate,
		EndDate:      resp.To.AddDate(0, 0, -1).Format(domain.DateFormat),
		TimesParked:  resp.TimesParked,
	}
	if !resp.From.IsZero() {
		out.StartDate = resp.From.Format(domain.DateFormat)
	}
	return out
}
