package get_meter_earnings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/earnings"
)

const (
	msgInvalidMeterID = "некорректный ID паркомата"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingStart   = "startDate обязателен"
	msgInvalidRange   = "startDate позже endDate"
	msgMeterNotFound  = "паркомат не найден"
)

type Handler struct {
	service EarningsService
	logger  Logger
}

func NewHandler(service EarningsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/parking-meters/{meterId}/earnings
// Query params: startDate (обязателен), endDate (по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	meterID, err := handlers.PathInt64(r, "meterId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidMeterID)
		return
	}

	begin, end, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.service.Earnings(r.Context(), meterID, begin, end)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, earnings.ErrMeterNotFound):
			h.logger.Warn("GET /parking-meters/{id}/earnings - Meter not found: meter_id=%d", meterID)
			handlers.RespondNotFound(w, msgMeterNotFound)

		default:
			h.logger.Error("GET /parking-meters/{id}/earnings - Failed: meter_id=%d, error=%v", meterID, err)
			handlers.RespondServiceError(w, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// parsePeriod читает startDate и endDate, при ошибке сам отвечает клиенту
func parsePeriod(w http.ResponseWriter, r *http.Request) (time.Time, *time.Time, bool) {
	begin, hasBegin, err := handlers.QueryDate(r, "startDate")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return time.Time{}, nil, false
	}
	if !hasBegin {
		handlers.RespondBadRequest(w, msgMissingStart)
		return time.Time{}, nil, false
	}

	end, hasEnd, err := handlers.QueryDate(r, "endDate")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return time.Time{}, nil, false
	}
	if !hasEnd {
		return begin, nil, true
	}
	return begin, &end, true
}
