package tickets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/broker"
	"github.com/m04kA/SMC-ParkingService/internal/infra/cache/spent"
	ticketRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/ticket"
	"github.com/m04kA/SMC-ParkingService/internal/service/tickets/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// Service сервис жизненного цикла и отчётов по тикетам
type Service struct {
	ticketRepo   TicketRepository
	spentCache   SpentCache
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса тикетов
func NewService(
	ticketRepo TicketRepository,
	spentCache SpentCache,
	publisher EventPublisher,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		ticketRepo:   ticketRepo,
		spentCache:   spentCache,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// GetByID получает тикет по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TicketResponse, error) {
	s.logger.Info("GetByID: fetching ticket id=%d", id)

	ticket, err := s.getTicket(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainTicket(ticket), nil
}

// Pay оплачивает тикет: считает сумму по тарифу из снимка паркомата,
// фиксирует время окончания и переводит PENDING -> PAID
func (s *Service) Pay(ctx context.Context, id int64) (*models.TicketResponse, error) {
	s.logger.Info("Pay: settling ticket id=%d", id)

	ticket, err := s.getTicket(ctx, "Pay", id)
	if err != nil {
		return nil, err
	}

	if ticket.PaymentStatus.IsTerminal() {
		s.logger.Warn("Pay: ticket id=%d is %s", id, ticket.PaymentStatus)
		return nil, ErrAlreadySettledOrCancelled
	}

	now := s.timeProvider.Now()

	amount, err := domain.ComputeCharge(ticket.StartTime, now, ticket.Meter.Rate)
	if err != nil {
		s.logger.Error("Pay: failed to compute charge for ticket id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Pay - compute charge: %v", ErrInternal, err)
	}

	updated, err := s.ticketRepo.Transition(ctx, id, domain.StatusPending, domain.StatusPaid, amount, now.UTC())
	if err != nil {
		switch {
		case errors.Is(err, ticketRepo.ErrStatusMismatch):
			s.logger.Warn("Pay: ticket id=%d was settled or cancelled concurrently", id)
			return nil, ErrAlreadySettledOrCancelled
		case errors.Is(err, ticketRepo.ErrTicketNotFound):
			return nil, ErrTicketNotFound
		}
		s.logger.Error("Pay: repository error for ticket id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Pay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Pay: ticket id=%d paid, amount=%.2f", id, updated.TotalAmountCharged)

	if err := s.spentCache.Invalidate(ctx, updated.Vehicle.LicensePlate); err != nil {
		s.logger.Warn("Pay: failed to invalidate spent cache for plate=%s: %v", updated.Vehicle.LicensePlate, err)
	}
	s.afterTransition(ctx, broker.EventTicketPaid, updated, now)

	return models.FromDomainTicket(updated), nil
}

// Cancel отменяет тикет в течение льготного периода.
// Время окончания фиксируется, сумма остаётся 0.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.TicketResponse, error) {
	s.logger.Info("Cancel: cancelling ticket id=%d", id)

	ticket, err := s.getTicket(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if err := checkCancellable(ticket.PaymentStatus); err != nil {
		s.logger.Warn("Cancel: ticket id=%d is %s", id, ticket.PaymentStatus)
		return nil, err
	}

	now := s.timeProvider.Now()
	if !ticket.WithinGracePeriod(now) {
		s.logger.Warn("Cancel: grace period reached for ticket id=%d, elapsed=%d min", id, ticket.ElapsedMinutes(now))
		return nil, ErrGracePeriodExpired
	}

	updated, err := s.ticketRepo.Transition(ctx, id, domain.StatusPending, domain.StatusCancelled, 0, now.UTC())
	if err != nil {
		switch {
		case errors.Is(err, ticketRepo.ErrStatusMismatch):
			// Статус поменялся между чтением и обновлением
			current, getErr := s.getTicket(ctx, "Cancel", id)
			if getErr != nil {
				return nil, getErr
			}
			s.logger.Warn("Cancel: ticket id=%d became %s concurrently", id, current.PaymentStatus)
			if cancelErr := checkCancellable(current.PaymentStatus); cancelErr != nil {
				return nil, cancelErr
			}
			return nil, ErrAlreadySettledOrCancelled
		case errors.Is(err, ticketRepo.ErrTicketNotFound):
			return nil, ErrTicketNotFound
		}
		s.logger.Error("Cancel: repository error for ticket id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: ticket id=%d cancelled", id)
	s.afterTransition(ctx, broker.EventTicketCancelled, updated, now)

	return models.FromDomainTicket(updated), nil
}

// TotalSpentByVehicle возвращает сумму начислений по всем тикетам автомобиля.
// Результат кэшируется в Redis, если кэш включён.
func (s *Service) TotalSpentByVehicle(ctx context.Context, licensePlate string) (*models.TotalSpentResponse, error) {
	plate := strings.ToUpper(strings.TrimSpace(licensePlate))
	if plate == "" {
		return nil, fmt.Errorf("%w: licensePlate is required", ErrInvalidInput)
	}

	s.logger.Info("TotalSpentByVehicle: plate=%s", plate)

	if total, ok, err := s.spentCache.Get(ctx, plate); err != nil {
		s.logger.Warn("TotalSpentByVehicle: cache read failed for plate=%s: %v", plate, err)
	} else if ok {
		return &models.TotalSpentResponse{LicensePlate: plate, TotalSpent: total}, nil
	}

	// Поколение читается до суммы из БД
	generation, genErr := s.spentCache.Generation(ctx, plate)
	if genErr != nil {
		s.logger.Warn("TotalSpentByVehicle: cache generation read failed for plate=%s: %v", plate, genErr)
	}

	total, count, err := s.ticketRepo.SumChargedByLicensePlate(ctx, plate)
	if err != nil {
		s.logger.Error("TotalSpentByVehicle: repository error for plate=%s: %v", plate, err)
		return nil, fmt.Errorf("%w: TotalSpentByVehicle - repository error: %v", ErrInternal, err)
	}
	if count == 0 {
		s.logger.Warn("TotalSpentByVehicle: no tickets for plate=%s", plate)
		return nil, fmt.Errorf("%w: %s", ErrNoTicketsForVehicle, plate)
	}

	if genErr == nil {
		if err := s.spentCache.Set(ctx, plate, total, generation); err != nil {
			if errors.Is(err, spent.ErrStale) {
				s.logger.Info("TotalSpentByVehicle: charges of plate=%s changed during read, not caching", plate)
			} else {
				s.logger.Warn("TotalSpentByVehicle: cache write failed for plate=%s: %v", plate, err)
			}
		}
	}

	return &models.TotalSpentResponse{LicensePlate: plate, TotalSpent: total}, nil
}

// List возвращает страницу всех тикетов
func (s *Service) List(ctx context.Context, page domain.Page) (*models.TicketListResponse, error) {
	s.logger.Info("List: page=%d, size=%d", page.Number, page.Size)

	tickets, err := s.ticketRepo.GetByFilter(ctx, domain.TicketFilter{Page: &page})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTicketList(tickets, page), nil
}

// FindByDateRange возвращает тикеты, начатые в [start, end)
func (s *Service) FindByDateRange(ctx context.Context, start, end time.Time, page domain.Page) (*models.TicketListResponse, error) {
	s.logger.Info("FindByDateRange: start=%s, end=%s", start.Format(time.RFC3339), end.Format(time.RFC3339))

	if start.After(end) {
		s.logger.Warn("FindByDateRange: start %s is after end %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
		return nil, ErrInvalidRange
	}

	tickets, err := s.ticketRepo.GetByFilter(ctx, domain.TicketFilter{
		StartFrom: &start,
		StartTo:   &end,
		Page:      &page,
	})
	if err != nil {
		s.logger.Error("FindByDateRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: FindByDateRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("FindByDateRange: found %d tickets", len(tickets))
	return models.FromDomainTicketList(tickets, page), nil
}

// FindByStatus возвращает тикеты с указанным статусом оплаты
func (s *Service) FindByStatus(ctx context.Context, status string, page domain.Page) (*models.TicketListResponse, error) {
	s.logger.Info("FindByStatus: status=%s", status)

	domainStatus, err := models.ToDomainPaymentStatus(status)
	if err != nil {
		s.logger.Warn("FindByStatus: invalid status=%s", status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	tickets, err := s.ticketRepo.GetByFilter(ctx, domain.TicketFilter{
		Status: ptr.Ptr(domainStatus),
		Page:   &page,
	})
	if err != nil {
		s.logger.Error("FindByStatus: repository error: %v", err)
		return nil, fmt.Errorf("%w: FindByStatus - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTicketList(tickets, page), nil
}

// FindBusiestHour для каждого паркомата возвращает час с наибольшим числом тикетов,
// начатых в [start, end)
func (s *Service) FindBusiestHour(ctx context.Context, start, end time.Time, page domain.Page) (*models.BusiestHourListResponse, error) {
	s.logger.Info("FindBusiestHour: start=%s, end=%s", start.Format(time.RFC3339), end.Format(time.RFC3339))

	if start.After(end) {
		return nil, ErrInvalidRange
	}

	tickets, err := s.ticketRepo.GetByFilter(ctx, domain.TicketFilter{
		StartFrom: &start,
		StartTo:   &end,
	})
	if err != nil {
		s.logger.Error("FindBusiestHour: repository error: %v", err)
		return nil, fmt.Errorf("%w: FindBusiestHour - repository error: %v", ErrInternal, err)
	}

	hours := domain.Paginate(busiestHours(tickets, s.location), page)

	resp := &models.BusiestHourListResponse{
		Hours: make([]models.BusiestHourResponse, 0, len(hours)),
		Page:  page.Number,
		Size:  page.Size,
	}
	for _, h := range hours {
		resp.Hours = append(resp.Hours, models.BusiestHourResponse{
			MeterID: h.MeterID,
			Address: models.FromDomainAddress(h.Address),
			Hour:    h.Hour.Format(domain.HourBucketFormat),
			Tickets: h.Tickets,
		})
	}

	return resp, nil
}

func (s *Service) getTicket(ctx context.Context, method string, id int64) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ticketRepo.ErrTicketNotFound) {
			s.logger.Warn("%s: ticket id=%d not found", method, id)
			return nil, ErrTicketNotFound
		}
		s.logger.Error("%s: repository error for ticket id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return ticket, nil
}

// afterTransition обновляет метрики и публикует событие; ошибки публикации только логируются
func (s *Service) afterTransition(ctx context.Context, eventType broker.EventType, ticket *domain.Ticket, now time.Time) {
	s.metrics.IncTicketTransition(string(ticket.PaymentStatus))

	if err := s.publisher.Publish(ctx, broker.NewTicketEvent(eventType, ticket, now)); err != nil {
		s.logger.Error("publish %s for ticket id=%d failed: %v", eventType, ticket.ID, err)
	}
}

func checkCancellable(status domain.PaymentStatus) error {
	switch status {
	case domain.StatusCancelled:
		return ErrAlreadyCancelled
	case domain.StatusPaid:
		return ErrAlreadySettledOrCancelled
	}
	return nil
}
