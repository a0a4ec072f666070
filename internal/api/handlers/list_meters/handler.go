package list_meters

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingmeters"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingmeters/models"
)

const (
	msgInvalidPage   = "некорректные параметры пагинации"
	msgMissingFilter = "необходимо указать city и/или neighborhood"
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

// Handle GET /api/v1/parking-meters
// Query params: city, neighborhood (хотя бы один), page, size
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, err := handlers.QueryPage(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	req := models.LocalityRequest{
		City:         handlers.QueryString(r, "city"),
		Neighborhood: handlers.QueryString(r, "neighborhood"),
	}

	result, err := h.service.ListByLocality(r.Context(), req, page)
	if err != nil {
		if errors.Is(err, parkingmeters.ErrMissingFilter) {
			handlers.RespondBadRequest(w, msgMissingFilter)
			return
		}
		h.logger.Error("GET /parking-meters - Failed to list meters: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
