package get_available_spaces

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	meterRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/meter"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// UseCase use case для расчёта свободных мест паркомата на день
type UseCase struct {
	ticketRepo   TicketRepository
	meterRepo    MeterRepository
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ticketRepo TicketRepository,
	meterRepo MeterRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		ticketRepo:   ticketRepo,
		meterRepo:    meterRepo,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных мест
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSpaces: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно дня [date 00:00, date+1 00:00)
	day := domain.DayStart(uc.timeProvider.Now().In(uc.location))
	if !req.Date.IsZero() {
		day = domain.CalendarDay(req.Date, uc.location)
	}
	from, to := domain.DateRange(day, day)

	uc.logger.Info("GetAvailableSpaces: meter=%d, date=%s", req.MeterID, day.Format(domain.DateFormat))

	// 3. Паркомат
	meter, err := uc.meterRepo.GetByID(ctx, req.MeterID)
	if err != nil {
		if errors.Is(err, meterRepo.ErrMeterNotFound) {
			uc.logger.Warn("GetAvailableSpaces: meter id=%d not found", req.MeterID)
			return nil, ErrMeterNotFound
		}
		uc.logger.Error("GetAvailableSpaces: failed to get meter id=%d: %v", req.MeterID, err)
		return nil, fmt.Errorf("%w: failed to get meter: %v", ErrInternal, err)
	}

	// 4. Активные тикеты, начатые в этот день
	tickets, err := uc.ticketRepo.GetByFilter(ctx, domain.TicketFilter{
		MeterIDs:  []int64{meter.ID},
		Status:    ptr.Ptr(domain.StatusPending),
		StartFrom: &from,
		StartTo:   &to,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSpaces: failed to get tickets of meter id=%d: %v", meter.ID, err)
		return nil, fmt.Errorf("%w: failed to get tickets: %v", ErrInternal, err)
	}

	occupied := countOccupied(tickets, meter.ID, from, to)
	available := availableSpaces(meter.TotalSpaces, occupied)

	uc.logger.Info("GetAvailableSpaces: meter id=%d has %d/%d spaces available", meter.ID, available, meter.TotalSpaces)

	return &Response{
		MeterID:   meter.ID,
		Address:   meter.Address,
		Spaces:    meter.TotalSpaces,
		Available: available,
		Date:      from,
	}, nil
}
