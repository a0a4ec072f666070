package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/vehicles"
	"github.com/m04kA/SMC-ParkingService/internal/service/vehicles/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "licensePlate и ownerId обязательны"
	msgOwnerNotFound      = "владелец не найден"
	msgDuplicatePlate     = "автомобиль с таким номером уже зарегистрирован"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, vehicles.ErrOwnerNotFound):
			h.logger.Warn("POST /vehicles - Owner not found: owner_id=%d", req.OwnerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, vehicles.ErrDuplicateLicensePlate):
			handlers.RespondConflict(w, msgDuplicatePlate)

		default:
			h.logger.Error("POST /vehicles - Failed to create vehicle: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created: vehicle_id=%d, plate=%s", result.ID, result.LicensePlate)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
