package earnings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	meterRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/meter"
	"github.com/m04kA/SMC-ParkingService/internal/service/earnings/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// Service сервис отчётов по выручке паркоматов.
// Учитываются только оплаченные тикеты, начатые в [begin 00:00, end+1 00:00).
type Service struct {
	ticketRepo   TicketRepository
	meterRepo    MeterRepository
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса выручки
func NewService(ticketRepo TicketRepository, meterRepo MeterRepository, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		ticketRepo:   ticketRepo,
		meterRepo:    meterRepo,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Earnings возвращает выручку одного паркомата за период. end == nil означает сегодня.
func (s *Service) Earnings(ctx context.Context, meterID int64, begin time.Time, end *time.Time) (*models.EarningsResponse, error) {
	from, to, err := s.window("Earnings", begin, end)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Earnings: meter=%d, from=%s, to=%s", meterID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	meter, err := s.meterRepo.GetByID(ctx, meterID)
	if err != nil {
		if errors.Is(err, meterRepo.ErrMeterNotFound) {
			s.logger.Warn("Earnings: meter id=%d not found", meterID)
			return nil, ErrMeterNotFound
		}
		s.logger.Error("Earnings: repository error for meter id=%d: %v", meterID, err)
		return nil, fmt.Errorf("%w: Earnings - get meter: %v", ErrInternal, err)
	}

	tickets, err := s.paidTickets(ctx, []int64{meter.ID}, from, to)
	if err != nil {
		s.logger.Error("Earnings: repository error for meter id=%d: %v", meterID, err)
		return nil, fmt.Errorf("%w: Earnings - get tickets: %v", ErrInternal, err)
	}

	totals := earningsOfMeters([]*domain.ParkingMeter{meter}, tickets, from, to)
	resp := models.NewEarningsResponse(meter.ID, meter.Address, totals[0].Total, from, to)

	s.logger.Info("Earnings: meter id=%d earned %.2f", meter.ID, resp.Earned)
	return &resp, nil
}

// EarningsByLocality возвращает выручку всех паркоматов города и/или района.
// Паркоматы без оплаченных тикетов попадают в отчёт с нулём.
func (s *Service) EarningsByLocality(
	ctx context.Context,
	req models.LocalityRequest,
	begin time.Time,
	end *time.Time,
	page domain.Page,
) (*models.EarningsListResponse, error) {
	filter := req.ToDomainFilter()
	if filter.IsEmpty() {
		s.logger.Warn("EarningsByLocality: neither city nor neighborhood provided")
		return nil, ErrMissingFilter
	}

	from, to, err := s.window("EarningsByLocality", begin, end)
	if err != nil {
		return nil, err
	}

	s.logger.Info("EarningsByLocality: city=%s, neighborhood=%s, from=%s, to=%s",
		ptr.Value(filter.City), ptr.Value(filter.Neighborhood), from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	meters, err := s.meterRepo.GetByLocality(ctx, filter, nil)
	if err != nil {
		s.logger.Error("EarningsByLocality: failed to get meters: %v", err)
		return nil, fmt.Errorf("%w: EarningsByLocality - get meters: %v", ErrInternal, err)
	}

	ids := make([]int64, 0, len(meters))
	for _, m := range meters {
		ids = append(ids, m.ID)
	}

	var tickets []*domain.Ticket
	if len(ids) > 0 {
		tickets, err = s.paidTickets(ctx, ids, from, to)
		if err != nil {
			s.logger.Error("EarningsByLocality: failed to get tickets: %v", err)
			return nil, fmt.Errorf("%w: EarningsByLocality - get tickets: %v", ErrInternal, err)
		}
	}

	totals := domain.Paginate(earningsOfMeters(meters, tickets, from, to), page)

	resp := &models.EarningsListResponse{
		Earnings: make([]models.EarningsResponse, 0, len(totals)),
		Page:     page.Number,
		Size:     page.Size,
	}
	for _, t := range totals {
		resp.Earnings = append(resp.Earnings, models.NewEarningsResponse(t.MeterID, t.Address, t.Total, from, to))
	}

	s.logger.Info("EarningsByLocality: %d meters matched, %d on page", len(meters), len(resp.Earnings))
	return resp, nil
}

// RankByEarnings возвращает паркоматы, отсортированные по выручке по убыванию
func (s *Service) RankByEarnings(ctx context.Context, begin time.Time, end *time.Time, page domain.Page) (*models.RankingResponse, error) {
	from, to, err := s.window("RankByEarnings", begin, end)
	if err != nil {
		return nil, err
	}

	s.logger.Info("RankByEarnings: from=%s, to=%s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	tickets, err := s.paidTickets(ctx, nil, from, to)
	if err != nil {
		s.logger.Error("RankByEarnings: failed to get tickets: %v", err)
		return nil, fmt.Errorf("%w: RankByEarnings - get tickets: %v", ErrInternal, err)
	}

	ranked := rankMeters(tickets, from, to)
	pageItems := domain.Paginate(ranked, page)

	resp := &models.RankingResponse{
		Ranking: make([]models.RankingEntryResponse, 0, len(pageItems)),
		Page:    page.Number,
		Size:    page.Size,
	}
	for i, t := range pageItems {
		resp.Ranking = append(resp.Ranking, rankingEntry(page.Offset()+i+1, t))
	}

	return resp, nil
}

// RankByEarningsPerDay возвращает рейтинг паркоматов по выручке отдельно для каждого дня периода.
// Страница нарезается по дням.
func (s *Service) RankByEarningsPerDay(ctx context.Context, begin time.Time, end *time.Time, page domain.Page) (*models.DailyRankingListResponse, error) {
	from, to, err := s.window("RankByEarningsPerDay", begin, end)
	if err != nil {
		return nil, err
	}

	s.logger.Info("RankByEarningsPerDay: from=%s, to=%s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	tickets, err := s.paidTickets(ctx, nil, from, to)
	if err != nil {
		s.logger.Error("RankByEarningsPerDay: failed to get tickets: %v", err)
		return nil, fmt.Errorf("%w: RankByEarningsPerDay - get tickets: %v", ErrInternal, err)
	}

	days := domain.Paginate(rankMetersPerDay(tickets, from, to, s.location), page)

	resp := &models.DailyRankingListResponse{
		Days: make([]models.DailyRankingResponse, 0, len(days)),
		Page: page.Number,
		Size: page.Size,
	}
	for _, d := range days {
		day := models.DailyRankingResponse{
			Date:    d.Day.Format(domain.DateFormat),
			Ranking: make([]models.RankingEntryResponse, 0, len(d.Ranking)),
		}
		for i, t := range d.Ranking {
			day.Ranking = append(day.Ranking, rankingEntry(i+1, t))
		}
		resp.Days = append(resp.Days, day)
	}

	return resp, nil
}

func rankingEntry(position int, t rankedMeter) models.RankingEntryResponse {
	return models.RankingEntryResponse{
		Position:       position,
		ParkingMeter:   models.FromDomainMeterSnapshot(t.Meter),
		TotalCollected: t.Total,
	}
}

func (s *Service) window(method string, begin time.Time, end *time.Time) (time.Time, time.Time, error) {
	if begin.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	from, to, err := domain.ResolveDateRange(begin, end, s.timeProvider.Now(), s.location)
	if err != nil {
		s.logger.Warn("%s: %v", method, err)
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func (s *Service) paidTickets(ctx context.Context, meterIDs []int64, from, to time.Time) ([]*domain.Ticket, error) {
	return s.ticketRepo.GetByFilter(ctx, domain.TicketFilter{
		MeterIDs:  meterIDs,
		Status:    ptr.Ptr(domain.StatusPaid),
		StartFrom: &from,
		StartTo:   &to,
	})
}
