package cancel_ticket

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/tickets"
)

const (
	msgInvalidTicketID   = "некорректный ID тикета"
	msgNotFound          = "тикет не найден"
	msgAlreadyCancelled  = "тикет уже отменён"
	msgAlreadySettled    = "оплаченный тикет нельзя отменить"
	msgGracePeriodPassed = "тикет можно отменить только в первые 5 минут"
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

// Handle PATCH /api/v1/tickets/{ticketId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ticketID, err := handlers.PathInt64(r, "ticketId")
	if err != nil {
		h.logger.Warn("PATCH /tickets/{id}/cancel - Invalid ticket ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTicketID)
		return
	}

	ticket, err := h.service.Cancel(r.Context(), ticketID)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrTicketNotFound):
			h.logger.Warn("PATCH /tickets/{id}/cancel - Ticket not found: ticket_id=%d", ticketID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tickets.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /tickets/{id}/cancel - Already cancelled: ticket_id=%d", ticketID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgAlreadyCancelled)

		case errors.Is(err, tickets.ErrAlreadySettledOrCancelled):
			h.logger.Warn("PATCH /tickets/{id}/cancel - Already paid: ticket_id=%d", ticketID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgAlreadySettled)

		case errors.Is(err, tickets.ErrGracePeriodExpired):
			h.logger.Warn("PATCH /tickets/{id}/cancel - Grace period expired: ticket_id=%d", ticketID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgGracePeriodPassed)

		default:
			h.logger.Error("PATCH /tickets/{id}/cancel - Failed to cancel ticket: ticket_id=%d, error=%v",
				ticketID, err)
			handlers.RespondServiceError(w, err)
		}
		return
	}

	h.logger.Info("PATCH /tickets/{id}/cancel - Ticket cancelled: ticket_id=%d", ticketID)
	handlers.RespondJSON(w, http.StatusOK, ticket)
}
