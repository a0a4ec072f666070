package get_owner

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/owners"
)

const (
	msgInvalidOwnerID = "некорректный ID владельца"
	msgNotFound       = "владелец не найден"
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

// Handle GET /api/v1/owners/{ownerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, err := handlers.PathInt64(r, "ownerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidOwnerID)
		return
	}

	owner, err := h.service.GetByID(r.Context(), ownerID)
	if err != nil {
		if errors.Is(err, owners.ErrOwnerNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /owners/{id} - Failed to get owner: owner_id=%d, error=%v", ownerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, owner)
}
