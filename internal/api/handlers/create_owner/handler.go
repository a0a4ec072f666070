package create_owner

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/owners"
	"github.com/m04kA/SMC-ParkingService/internal/service/owners/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "name, taxId и корректный email обязательны"
	msgDuplicateTaxID     = "владелец с таким ИНН уже зарегистрирован"
	msgDuplicateEmail     = "владелец с таким email уже зарегистрирован"
)

type Handler struct {
	service OwnerService
	logger  Logger
}

func NewHandler(service OwnerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/owners
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOwnerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /owners - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, owners.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, owners.ErrDuplicateTaxID):
			handlers.RespondConflict(w, msgDuplicateTaxID)

		case errors.Is(err, owners.ErrDuplicateEmail):
			handlers.RespondConflict(w, msgDuplicateEmail)

		default:
			h.logger.Error("POST /owners - Failed to create owner: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /owners - Owner created: owner_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
