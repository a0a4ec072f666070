package get_available_spaces

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	getAvailableSpaces "github.com/m04kA/SMC-ParkingService/internal/usecase/get_available_spaces"
)

const (
	msgInvalidMeterID = "некорректный ID паркомата"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMeterNotFound  = "паркомат не найден"
)

type Handler struct {
	useCase GetAvailableSpacesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSpacesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/parking-meters/{meterId}/available-spaces
// Query params: date (опционально, YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	meterID, err := handlers.PathInt64(r, "meterId")
	if err != nil {
		h.logger.Warn("GET /parking-meters/{id}/available-spaces - Invalid meter ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeterID)
		return
	}

	date, _, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /parking-meters/{id}/available-spaces - %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(meterID, date))
	if err != nil {
		if errors.Is(err, getAvailableSpaces.ErrMeterNotFound) {
			h.logger.Warn("GET /parking-meters/{id}/available-spaces - Meter not found: meter_id=%d", meterID)
			handlers.RespondNotFound(w, msgMeterNotFound)
			return
		}
		h.logger.Error("GET /parking-meters/{id}/available-spaces - Failed: meter_id=%d, error=%v", meterID, err)
		handlers.RespondServiceError(w, err)
		return
	}

	h.logger.Info("GET /parking-meters/{id}/available-spaces - meter_id=%d, available=%d/%d",
		meterID, result.Available, result.Spaces)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
