package get_times_parked

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	meterRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/meter"
)

// UseCase use case для подсчёта парковок автомобиля у паркомата за период
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

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTimesParked: validation failed: %v", err)
		return nil, err
	}

	plate := strings.ToUpper(strings.TrimSpace(req.LicensePlate))

	// 2. Период
	from, to, err := uc.window(req)
	if err != nil {
		uc.logger.Warn("GetTimesParked: invalid range for meter=%d: %v", req.MeterID, err)
		return nil, err
	}

	uc.logger.Info("GetTimesParked: meter=%d, plate=%s, from=%s, to=%s",
		req.MeterID, plate, formatBound(from), to.Format(domain.DateFormat))

	// 3. Паркомат должен существовать
	if _, err := uc.meterRepo.GetByID(ctx, req.MeterID); err != nil {
		if errors.Is(err, meterRepo.ErrMeterNotFound) {
			uc.logger.Warn("GetTimesParked: meter id=%d not found", req.MeterID)
			return nil, ErrMeterNotFound
		}
		uc.logger.Error("GetTimesParked: failed to get meter id=%d: %v", req.MeterID, err)
		return nil, fmt.Errorf("%w: failed to get meter: %v", ErrInternal, err)
	}

	// 4. Тикеты автомобиля у паркомата за период
	filter := domain.TicketFilter{
		MeterIDs:     []int64{req.MeterID},
		LicensePlate: &plate,
		StartTo:      &to,
	}
	if !from.IsZero() {
		filter.StartFrom = &from
	}

	tickets, err := uc.ticketRepo.GetByFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetTimesParked: failed to get tickets: %v", err)
		return nil, fmt.Errorf("%w: failed to get tickets: %v", ErrInternal, err)
	}

	visits := countVisits(tickets, req.MeterID, plate, from, to)

	uc.logger.Info("GetTimesParked: plate=%s parked %d times at meter id=%d", plate, visits, req.MeterID)

	return &Response{
		MeterID:      req.MeterID,
		LicensePlate: plate,
		From:         from,
		To:           to,
		TimesParked:  visits,
	}, nil
}

// window возвращает окно [from, to). Без startDate from нулевое: нижней границы нет.
func (uc *UseCase) window(req *Request) (time.Time, time.Time, error) {
	now := uc.timeProvider.Now()
	if !req.Begin.IsZero() {
		return domain.ResolveDateRange(req.Begin, req.End, now, uc.location)
	}

	last := domain.DayStart(now.In(uc.location))
	if req.End != nil {
		last = domain.CalendarDay(*req.End, uc.location)
	}
	_, to := domain.DateRange(last, last)
	return time.Time{}, to, nil
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(domain.DateFormat)
}
