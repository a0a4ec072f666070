package create_ticket

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.MeterID <= 0 {
		return fmt.Errorf("%w: parkingMeterID must be positive", ErrInvalidInput)
	}

	return nil
}

// checkOpen проверяет только время закрытия паркомата.
// now должен быть в часовом поясе паркомата.
func checkOpen(meter *domain.ParkingMeter, now time.Time) error {
	if meter.OperatingHours.IsClosedAt(now) {
		return fmt.Errorf("%w: closes at %s, now %s", ErrMeterClosed, meter.OperatingHours.End, now.Format(domain.TimeFormat))
	}
	return nil
}

// checkCapacity проверяет, что занятых мест меньше, чем всего мест
func checkCapacity(meter *domain.ParkingMeter, pending int) error {
	if pending >= meter.TotalSpaces {
		return fmt.Errorf("%w: %d/%d spaces taken", ErrMeterFull, pending, meter.TotalSpaces)
	}
	return nil
}
