package get_times_parked

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	getTimesParked "github.com/m04kA/SMC-ParkingService/internal/usecase/get_times_parked"
)

const (
	msgInvalidMeterID = "некорректный ID паркомата"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput   = "licensePlate обязателен"
	msgInvalidRange   = "startDate позже endDate"
	msgMeterNotFound  = "паркомат не найден"
)

type Handler struct {
	useCase GetTimesParkedUseCase
	logger  Logger
}

func NewHandler(useCase GetTimesParkedUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/parking-meters/{meterId}/times-parked
// Query params: licensePlate (обязателен), startDate (без него нижней границы нет), endDate (по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	meterID, err := handlers.PathInt64(r, "meterId")
	if err != nil {
		h.logger.Warn("GET /parking-meters/{id}/times-parked - Invalid meter ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeterID)
		return
	}

	begin, _, err := handlers.QueryDate(r, "startDate")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, hasEnd, err := handlers.QueryDate(r, "endDate")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getTimesParked.Request{
		MeterID:      meterID,
		LicensePlate: r.URL.Query().Get("licensePlate"),
		Begin:        begin,
	}
	if hasEnd {
		req.End = &end
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getTimesParked.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getTimesParked.ErrInvalidInput):
			h.logger.Warn("GET /parking-meters/{id}/times-parked - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getTimesParked.ErrMeterNotFound):
			h.logger.Warn("GET /parking-meters/{id}/times-parked - Meter not found: meter_id=%d", meterID)
			handlers.RespondNotFound(w, msgMeterNotFound)

		default:
			h.logger.Error("GET /parking-meters/{id}/times-parked - Failed: meter_id=%d, error=%v", meterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
