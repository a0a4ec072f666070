package get_available_spaces

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.MeterID <= 0 {
		return fmt.Errorf("%w: parkingMeterID must be positive", ErrInvalidInput)
	}

	return nil
}
