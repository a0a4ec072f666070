package get_meter

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingmeters"
)

const (
	msgInvalidMeterID = "некорректный ID паркомата"
	msgNotFound       = "паркомат не найден"
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

// Handle GET /api/v1/parking-meters/{meterId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	meterID, err := handlers.PathInt64(r, "meterId")
	if err != nil {
		h.logger.Warn("GET /parking-meters/{id} - Invalid meter ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeterID)
		return
	}

	meter, err := h.service.GetByID(r.Context(), meterID)
	if err != nil {
		if errors.Is(err, parkingmeters.ErrMeterNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /parking-meters/{id} - Failed to get meter: meter_id=%d, error=%v", meterID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, meter)
}
