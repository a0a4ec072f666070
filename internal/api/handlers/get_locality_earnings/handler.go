package get_locality_earnings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/earnings"
	"github.com/m04kA/SMC-ParkingService/internal/service/earnings/models"
)

const (
	msgInvalidPage   = "некорректные параметры пагинации"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingStart  = "startDate обязателен"
	msgInvalidRange  = "startDate позже endDate"
	msgMissingFilter = "необходимо указать city и/или neighborhood"
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

// Handle GET /api/v1/earnings
// Query params: city, neighborhood (хотя бы один), startDate, endDate, page, size
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, err := handlers.QueryPage(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	begin, hasBegin, err := handlers.QueryDate(r, "startDate")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if !hasBegin {
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}
	var end *time.Time
	if t, ok, err := handlers.QueryDate(r, "endDate"); err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	} else if ok {
		end = &t
	}

	req := models.LocalityRequest{
		City:         handlers.QueryString(r, "city"),
		Neighborhood: handlers.QueryString(r, "neighborhood"),
	}

	result, err := h.service.EarningsByLocality(r.Context(), req, begin, end, page)
	if err != nil {
		switch {
		case errors.Is(err, earnings.ErrMissingFilter):
			handlers.RespondBadRequest(w, msgMissingFilter)

		case errors.Is(err, domain.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /earnings - Failed: error=%v", err)
			handlers.RespondServiceError(w, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
