package create_ticket

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	createTicket "github.com/m04kA/SMC-ParkingService/internal/usecase/create_ticket"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "vehicleId и parkingMeterId обязательны"
	msgVehicleNotFound    = "автомобиль не найден"
	msgMeterNotFound      = "паркомат не найден"
	msgMeterClosed        = "паркомат закрыт"
	msgAlreadyParked      = "у автомобиля уже есть активный тикет"
	msgMeterFull          = "на паркомате нет свободных мест"
	msgConcurrent         = "паркомат занят параллельным запросом, повторите попытку"
)

type Handler struct {
	useCase CreateTicketUseCase
	logger  Logger
}

func NewHandler(useCase CreateTicketUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tickets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTicketRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tickets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createTicket.ErrInvalidInput):
			h.logger.Warn("POST /tickets - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createTicket.ErrVehicleNotFound):
			h.logger.Warn("POST /tickets - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createTicket.ErrMeterNotFound):
			h.logger.Warn("POST /tickets - Meter not found: meter_id=%d", req.MeterID)
			handlers.RespondNotFound(w, msgMeterNotFound)

		case errors.Is(err, createTicket.ErrMeterClosed):
			h.logger.Warn("POST /tickets - Meter closed: meter_id=%d", req.MeterID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgMeterClosed)

		case errors.Is(err, createTicket.ErrVehicleAlreadyParked):
			h.logger.Warn("POST /tickets - Vehicle already parked: vehicle_id=%d", req.VehicleID)
			handlers.RespondConflict(w, msgAlreadyParked)

		case errors.Is(err, createTicket.ErrMeterFull):
			h.logger.Warn("POST /tickets - Meter full: meter_id=%d", req.MeterID)
			handlers.RespondConflict(w, msgMeterFull)

		case errors.Is(err, createTicket.ErrConcurrentCreation):
			h.logger.Warn("POST /tickets - Concurrent creation: meter_id=%d, vehicle_id=%d", req.MeterID, req.VehicleID)
			handlers.RespondConflict(w, msgConcurrent)

		default:
			h.logger.Error("POST /tickets - Failed to create ticket: meter_id=%d, vehicle_id=%d, error=%v",
				req.MeterID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tickets - Ticket created successfully: ticket_id=%d, meter_id=%d, vehicle_id=%d",
		result.ID, req.MeterID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
