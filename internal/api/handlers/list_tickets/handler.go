package list_tickets

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/tickets"
	"github.com/m04kA/SMC-ParkingService/internal/service/tickets/models"
)

const (
	msgInvalidPage    = "некорректные параметры пагинации"
	msgInvalidDate    = "некорректная дата, ожидается RFC3339 или YYYY-MM-DD"
	msgMissingRange   = "необходимо указать startDate и endDate"
	msgInvalidRange   = "startDate позже endDate"
	msgInvalidStatus  = "некорректный статус оплаты, ожидается PENDING, PAID или CANCELLED"
	msgMixedFiltering = "нельзя одновременно фильтровать по статусу и по периоду"
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

// Handle GET /api/v1/tickets
// Query params: status | startDate+endDate (опционально), page, size
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, err := handlers.QueryPage(r)
	if err != nil {
		h.logger.Warn("GET /tickets - Invalid page: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	start, hasStart, err := handlers.QueryDateTime(r, "startDate", h.location)
	if err != nil {
		h.logger.Warn("GET /tickets - %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, hasEnd, err := handlers.QueryDateTime(r, "endDate", h.location)
	if err != nil {
		h.logger.Warn("GET /tickets - %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	status := handlers.QueryString(r, "status")

	var result *models.TicketListResponse
	switch {
	case status != nil && (hasStart || hasEnd):
		handlers.RespondBadRequest(w, msgMixedFiltering)
		return

	case status != nil:
		result, err = h.service.FindByStatus(r.Context(), *status, page)

	case hasStart || hasEnd:
		if !hasStart || !hasEnd {
			handlers.RespondBadRequest(w, msgMissingRange)
			return
		}
		result, err = h.service.FindByDateRange(r.Context(), start, end, page)

	default:
		result, err = h.service.List(r.Context(), page)
	}

	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrInvalidStatus):
			h.logger.Warn("GET /tickets - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, domain.ErrInvalidRange):
			h.logger.Warn("GET /tickets - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /tickets - Failed to list tickets: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
