package get_busiest_hours

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const (
	msgInvalidPage  = "некорректные параметры пагинации"
	msgInvalidDate  = "некорректная дата, ожидается RFC3339 или YYYY-MM-DD"
	msgMissingRange = "необходимо указать startDate и endDate"
	msgInvalidRange = "startDate позже endDate"
)

type Handler struct {
	service  TicketService
	location *time.Location
	logger   Logger
}

func NewHandler(service TicketService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/tickets/busiest-hours
// Query params: startDate, endDate (обязательны), page, size
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, err := handlers.QueryPage(r)
	if err != nil {
		h.logger.Warn("GET /tickets/busiest-hours - Invalid page: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	start, hasStart, err := handlers.QueryDateTime(r, "startDate", h.location)
	if err != nil {
		h.logger.Warn("GET /tickets/busiest-hours - %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, hasEnd, err := handlers.QueryDateTime(r, "endDate", h.location)
	if err != nil {
		h.logger.Warn("GET /tickets/busiest-hours - %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if !hasStart || !hasEnd {
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	result, err := h.service.FindBusiestHour(r.Context(), start, end, page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			h.logger.Warn("GET /tickets/busiest-hours - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("GET /tickets/busiest-hours - Failed to compute: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tickets/busiest-hours - meters on page: %d", len(result.Hours))
	handlers.RespondJSON(w, http.StatusOK, result)
}
