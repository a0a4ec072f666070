package get_times_parked

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.MeterID <= 0 {
		return fmt.Errorf("%w: parkingMeterID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.LicensePlate) == "" {
		return fmt.Errorf("%w: licensePlate is required", ErrInvalidInput)
	}

	return nil
}
