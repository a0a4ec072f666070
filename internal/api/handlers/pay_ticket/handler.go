package pay_ticket

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/tickets"
)

const (
	msgInvalidTicketID = "некорректный ID тикета"
	msgNotFound        = "тикет не найден"
	msgAlreadySettled  = "тикет уже оплачен или отменён"
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

// Handle PATCH /api/v1/tickets/{ticketId}/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ticketID, err := handlers.PathInt64(r, "ticketId")
	if err != nil {
		h.logger.Warn("PATCH /tickets/{id}/pay - Invalid ticket ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTicketID)
		return
	}

	ticket, err := h.service.Pay(r.Context(), ticketID)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrTicketNotFound):
			h.logger.Warn("PATCH /tickets/{id}/pay - Ticket not found: ticket_id=%d", ticketID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tickets.ErrAlreadySettledOrCancelled):
			h.logger.Warn("PATCH /tickets/{id}/pay - Already settled: ticket_id=%d", ticketID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgAlreadySettled)

		default:
			h.logger.Error("PATCH /tickets/{id}/pay - Failed to pay ticket: ticket_id=%d, error=%v", ticketID, err)
			handlers.RespondServiceError(w, err)
		}
		return
	}

	h.logger.Info("PATCH /tickets/{id}/pay - Ticket paid: ticket_id=%d, amount=%.2f",
		ticketID, ticket.TotalAmountCharged)
	handlers.RespondJSON(w, http.StatusOK, ticket)
}
