package get_vehicle_spent

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/tickets"
)

const (
	msgMissingPlate = "номер автомобиля обязателен"
	msgNoTickets    = "у автомобиля нет тикетов"
)

type Handler struct {
	service TicketService
	logger  Logger
}

func NewHandler(service TicketService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tickets/vehicles/{licensePlate}/total-spent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	plate := mux.Vars(r)["licensePlate"]

	result, err := h.service.TotalSpentByVehicle(r.Context(), plate)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingPlate)

		case errors.Is(err, tickets.ErrNoTicketsForVehicle):
			h.logger.Warn("GET /tickets/vehicles/{plate}/total-spent - No tickets: plate=%s", plate)
			handlers.RespondNotFound(w, msgNoTickets)

		default:
			h.logger.Error("GET /tickets/vehicles/{plate}/total-spent - Failed: plate=%s, error=%v", plate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
