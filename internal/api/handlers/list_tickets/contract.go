package list_tickets

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/tickets/models"
)

type TicketService interface {
	List(ctx context.Context, page domain.Page) (*models.TicketListResponse, error)
	FindByStatus(ctx context.Context, status string, page domain.Page) (*models.TicketListResponse, error)
	FindByDateRange(ctx context.Context, start, end time.Time, page domain.Page) (*models.TicketListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
