package update_meter

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingmeters"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingmeters/models"
)

const (
	msgInvalidMeterID     = "некорректный ID паркомата"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "паркомат не найден"
	msgVersionConflict    = "паркомат был изменён, получите актуальную версию и повторите запрос"
	msgDuplicateZipCode   = "паркомат с таким индексом уже существует"
	msgZipCodeNotFound    = "индекс не найден"
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

// Handle PUT /api/v1/parking-meters/{meterId}
// Тело должно содержать version, прочитанную клиентом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	meterID, err := handlers.PathInt64(r, "meterId")
	if err != nil {
		h.logger.Warn("PUT /parking-meters/{id} - Invalid meter ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeterID)
		return
	}

	var req models.UpdateMeterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /parking-meters/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), meterID, &req)
	if err != nil {
		switch {
		case errors.Is(err, parkingmeters.ErrMeterNotFound):
			h.logger.Warn("PUT /parking-meters/{id} - Meter not found: meter_id=%d", meterID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, parkingmeters.ErrVersionConflict):
			h.logger.Warn("PUT /parking-meters/{id} - Version conflict: meter_id=%d, version=%d", meterID, req.Version)
			handlers.RespondConflict(w, msgVersionConflict)

		case errors.Is(err, parkingmeters.ErrDuplicateZipCode):
			handlers.RespondConflict(w, msgDuplicateZipCode)

		case errors.Is(err, parkingmeters.ErrZipCodeNotFound):
			handlers.RespondBadRequest(w, msgZipCodeNotFound)

		default:
			if handlers.StatusFromError(err) == http.StatusInternalServerError {
				h.logger.Error("PUT /parking-meters/{id} - Failed to update meter: meter_id=%d, error=%v", meterID, err)
			} else {
				h.logger.Warn("PUT /parking-meters/{id} - Rejected: meter_id=%d, error=%v", meterID, err)
			}
			handlers.RespondServiceError(w, err)
		}
		return
	}

	h.logger.Info("PUT /parking-meters/{id} - Meter updated: meter_id=%d, version=%d", result.ID, result.Version)
	handlers.RespondJSON(w, http.StatusOK, result)
}
