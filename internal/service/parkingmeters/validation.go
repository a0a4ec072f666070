package parkingmeters

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/addressservice"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingmeters/models"
)

// validateMeterData проверяет входные данные и собирает паркомат без адреса улицы
func validateMeterData(req *models.CreateMeterRequest) (*domain.ParkingMeter, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	hours, err := domain.ValidateOperatingHours(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	rate := domain.Rate{FirstHour: req.FirstHourRate, AdditionalHour: req.AdditionalHourRate}
	if !rate.IsValid() {
		return nil, fmt.Errorf("%w: rates must be greater than 0", ErrInvalidInput)
	}

	if req.TotalSpaces < 1 {
		return nil, fmt.Errorf("%w: totalSpaces must be at least 1", ErrInvalidInput)
	}

	zipCode := addressservice.NormalizeZipCode(req.ZipCode)
	if zipCode == "" {
		return nil, fmt.Errorf("%w: zipCode is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Number) == "" {
		return nil, fmt.Errorf("%w: number is required", ErrInvalidInput)
	}

	return &domain.ParkingMeter{
		OperatingHours: hours,
		Rate:           rate,
		TotalSpaces:    req.TotalSpaces,
		Address: domain.Address{
			ZipCode:    zipCode,
			Number:     strings.TrimSpace(req.Number),
			Complement: strings.TrimSpace(req.Complement),
		},
	}, nil
}
