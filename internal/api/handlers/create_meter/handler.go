package create_meter

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingmeters"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingmeters/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHours       = "некорректные часы работы, ожидается HH:MM и начало не позже конца"
	msgDuplicateZipCode   = "паркомат с таким индексом уже существует"
	msgZipCodeNotFound    = "индекс не найден"
	msgAddressLookup      = "сервис адресов недоступен"
)

type Handler struct {
	service MeterService
	logger  Logger
}

func NewHandler(service MeterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/parking-meters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMeterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /parking-meters - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondMeterError(w, h.logger, "POST /parking-meters", err)
		return
	}

	h.logger.Info("POST /parking-meters - Meter created: meter_id=%d, zip=%s", result.ID, result.Address.ZipCode)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

func respondMeterError(w http.ResponseWriter, log Logger, route string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidFormat), errors.Is(err, domain.ErrStartAfterEnd):
		log.Warn("%s - Invalid operating hours: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidHours)

	case errors.Is(err, parkingmeters.ErrDuplicateZipCode):
		log.Warn("%s - Duplicate zip code: %v", route, err)
		handlers.RespondConflict(w, msgDuplicateZipCode)

	case errors.Is(err, parkingmeters.ErrZipCodeNotFound):
		log.Warn("%s - Zip code not found: %v", route, err)
		handlers.RespondBadRequest(w, msgZipCodeNotFound)

	case errors.Is(err, parkingmeters.ErrAddressLookupFailed):
		log.Error("%s - Address lookup failed: %v", route, err)
		handlers.RespondError(w, http.StatusBadGateway, msgAddressLookup)

	case errors.Is(err, domain.ErrInvalidInput):
		log.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		log.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
