package earnings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	meterRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/meter"
	"github.com/m04kA/SMC-ParkingService/internal/service/earnings/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type fakeTickets struct {
	tickets []*domain.Ticket
	filters []domain.TicketFilter
	err     error
}

func (f *fakeTickets) GetByFilter(_ context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Ticket, 0)
	for _, t := range f.tickets {
		if len(filter.MeterIDs) > 0 && !containsID(filter.MeterIDs, t.Meter.ID) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fakeMeters struct {
	meters     []*domain.ParkingMeter
	lastFilter domain.LocalityFilter
}

func (f *fakeMeters) GetByID(_ context.Context, id int64) (*domain.ParkingMeter, error) {
	for _, m := range f.meters {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, meterRepo.ErrMeterNotFound
}

func (f *fakeMeters) GetByLocality(_ context.Context, filter domain.LocalityFilter, _ *domain.Page) ([]*domain.ParkingMeter, error) {
	f.lastFilter = filter
	out := make([]*domain.ParkingMeter, 0)
	for _, m := range f.meters {
		if filter.City != nil && m.Address.City != *filter.City {
			continue
		}
		if filter.Neighborhood != nil && m.Address.Neighborhood != *filter.Neighborhood {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(tickets *fakeTickets, meters *fakeMeters) *Service {
	svc := NewService(tickets, meters, time.UTC, nopLogger{})
	svc.timeProvider = fixedTime{now: time.Date(2024, 5, 3, 15, 0, 0, 0, time.UTC)}
	return svc
}

func sampleMeters() *fakeMeters {
	return &fakeMeters{meters: []*domain.ParkingMeter{
		{ID: 1, Address: domain.Address{City: "São Paulo", Neighborhood: "Sé"}},
		{ID: 2, Address: domain.Address{City: "São Paulo", Neighborhood: "Bela Vista"}},
		{ID: 3, Address: domain.Address{City: "Campinas", Neighborhood: "Centro"}},
	}}
}

func TestEarnings_SumsPaidTickets(t *testing.T) {
	tickets := &fakeTickets{tickets: []*domain.Ticket{
		paid(1, 1, 5, windowFrom.Add(9*time.Hour)),
		paid(2, 1, 10, windowFrom.Add(30*time.Hour)),
		paid(3, 2, 99, windowFrom.Add(9*time.Hour)),
	}}
	svc := newTestService(tickets, sampleMeters())

	end := windowFrom.AddDate(0, 0, 1)
	resp, err := svc.Earnings(context.Background(), 1, windowFrom, &end)

	require.NoError(t, err)
	assert.Equal(t, 15.0, resp.Earned)
	assert.Equal(t, "2024-05-01", resp.From)
	assert.Equal(t, "2024-05-02", resp.To)

	require.Len(t, tickets.filters, 1)
	filter := tickets.filters[0]
	assert.Equal(t, []int64{1}, filter.MeterIDs)
	assert.Equal(t, domain.StatusPaid, *filter.Status)
	assert.Equal(t, windowFrom, *filter.StartFrom)
	assert.Equal(t, windowFrom.AddDate(0, 0, 2), *filter.StartTo)
}

func TestEarnings_DefaultEndIsToday(t *testing.T) {
	tickets := &fakeTickets{}
	svc := newTestService(tickets, sampleMeters())

	resp, err := svc.Earnings(context.Background(), 1, windowFrom, nil)

	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Earned)
	assert.Equal(t, "2024-05-03", resp.To)
	assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), *tickets.filters[0].StartTo)
}

func TestEarnings_MeterNotFound(t *testing.T) {
	svc := newTestService(&fakeTickets{}, sampleMeters())

	_, err := svc.Earnings(context.Background(), 42, windowFrom, nil)

	assert.ErrorIs(t, err, ErrMeterNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEarnings_InvalidRange(t *testing.T) {
	svc := newTestService(&fakeTickets{}, sampleMeters())

	end := windowFrom.AddDate(0, 0, -1)
	_, err := svc.Earnings(context.Background(), 1, windowFrom, &end)

	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEarnings_RepositoryError(t *testing.T) {
	svc := newTestService(&fakeTickets{err: errors.New("db down")}, sampleMeters())

	_, err := svc.Earnings(context.Background(), 1, windowFrom, nil)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestEarningsByLocality_MissingFilter(t *testing.T) {
	tickets := &fakeTickets{}
	svc := newTestService(tickets, sampleMeters())

	for _, req := range []models.LocalityRequest{
		{},
		{City: ptr.Ptr(""), Neighborhood: ptr.Ptr("")},
	} {
		_, err := svc.EarningsByLocality(context.Background(), req, windowFrom, nil, domain.NewPage(0, 10))
		assert.ErrorIs(t, err, ErrMissingFilter)
	}
	assert.Empty(t, tickets.filters)
}

func TestEarningsByLocality_IncludesZeroEarners(t *testing.T) {
	tickets := &fakeTickets{tickets: []*domain.Ticket{
		paid(1, 2, 12.5, windowFrom.Add(10*time.Hour)),
		paid(2, 3, 40, windowFrom.Add(10*time.Hour)),
	}}
	svc := newTestService(tickets, sampleMeters())

	resp, err := svc.EarningsByLocality(context.Background(),
		models.LocalityRequest{City: ptr.Ptr("São Paulo")}, windowFrom, nil, domain.NewPage(0, 10))

	require.NoError(t, err)
	require.Len(t, resp.Earnings, 2)
	assert.Equal(t, int64(1), resp.Earnings[0].MeterID)
	assert.Equal(t, 0.0, resp.Earnings[0].Earned)
	assert.Equal(t, int64(2), resp.Earnings[1].MeterID)
	assert.Equal(t, 12.5, resp.Earnings[1].Earned)
	assert.Equal(t, []int64{1, 2}, tickets.filters[0].MeterIDs)
}

func TestEarningsByLocality_NoMatchingMeters(t *testing.T) {
	tickets := &fakeTickets{}
	svc := newTestService(tickets, sampleMeters())

	resp, err := svc.EarningsByLocality(context.Background(),
		models.LocalityRequest{Neighborhood: ptr.Ptr("Moema")}, windowFrom, nil, domain.NewPage(0, 10))

	require.NoError(t, err)
	assert.Empty(t, resp.Earnings)
	assert.Empty(t, tickets.filters)
}

func TestEarningsByLocality_Pagination(t *testing.T) {
	svc := newTestService(&fakeTickets{}, sampleMeters())

	resp, err := svc.EarningsByLocality(context.Background(),
		models.LocalityRequest{City: ptr.Ptr("São Paulo")}, windowFrom, nil, domain.NewPage(1, 1))

	require.NoError(t, err)
	require.Len(t, resp.Earnings, 1)
	assert.Equal(t, int64(2), resp.Earnings[0].MeterID)
	assert.Equal(t, 1, resp.Page)
}

func TestRankByEarnings(t *testing.T) {
	tickets := &fakeTickets{tickets: []*domain.Ticket{
		paid(1, 1, 5, windowFrom.Add(9*time.Hour)),
		paid(2, 2, 30, windowFrom.Add(9*time.Hour)),
		paid(3, 3, 5, windowFrom.Add(9*time.Hour)),
	}}
	svc := newTestService(tickets, sampleMeters())

	resp, err := svc.RankByEarnings(context.Background(), windowFrom, nil, domain.NewPage(0, 2))

	require.NoError(t, err)
	require.Len(t, resp.Ranking, 2)
	assert.Equal(t, int64(2), resp.Ranking[0].ParkingMeter.ID)
	assert.Equal(t, 1, resp.Ranking[0].Position)
	assert.Equal(t, int64(1), resp.Ranking[1].ParkingMeter.ID)
	assert.Nil(t, tickets.filters[0].MeterIDs)

	next, err := svc.RankByEarnings(context.Background(), windowFrom, nil, domain.NewPage(1, 2))

	require.NoError(t, err)
	require.Len(t, next.Ranking, 1)
	assert.Equal(t, int64(3), next.Ranking[0].ParkingMeter.ID)
	assert.Equal(t, 3, next.Ranking[0].Position)
}

func TestRankByEarnings_MissingStartDate(t *testing.T) {
	svc := newTestService(&fakeTickets{}, sampleMeters())

	_, err := svc.RankByEarnings(context.Background(), time.Time{}, nil, domain.NewPage(0, 10))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRankByEarningsPerDay(t *testing.T) {
	tickets := &fakeTickets{tickets: []*domain.Ticket{
		paid(1, 1, 5, windowFrom.Add(9*time.Hour)),
		paid(2, 2, 30, windowFrom.Add(10*time.Hour)),
		paid(3, 3, 12, windowFrom.Add(33*time.Hour)),
		paid(4, 1, 8, windowFrom.Add(57*time.Hour)),
	}}
	svc := newTestService(tickets, sampleMeters())

	resp, err := svc.RankByEarningsPerDay(context.Background(), windowFrom, nil, domain.NewPage(0, 2))

	require.NoError(t, err)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, "2024-05-01", resp.Days[0].Date)
	require.Len(t, resp.Days[0].Ranking, 2)
	assert.Equal(t, int64(2), resp.Days[0].Ranking[0].ParkingMeter.ID)
	assert.Equal(t, 1, resp.Days[0].Ranking[0].Position)
	assert.Equal(t, 2, resp.Days[0].Ranking[1].Position)
	assert.Equal(t, "2024-05-02", resp.Days[1].Date)

	next, err := svc.RankByEarningsPerDay(context.Background(), windowFrom, nil, domain.NewPage(1, 2))

	require.NoError(t, err)
	require.Len(t, next.Days, 1)
	assert.Equal(t, "2024-05-03", next.Days[0].Date)
	assert.Equal(t, 8.0, next.Days[0].Ranking[0].TotalCollected)
}

func TestRankByEarnings_EntryCarriesMeterSnapshot(t *testing.T) {
	ticket := paid(1, 1, 5, windowFrom.Add(9*time.Hour))
	ticket.Meter.Rate = domain.Rate{FirstHour: 5, AdditionalHour: 10}
	ticket.Meter.TotalSpaces = 4
	ticket.Meter.Version = 3
	svc := newTestService(&fakeTickets{tickets: []*domain.Ticket{ticket}}, sampleMeters())

	resp, err := svc.RankByEarnings(context.Background(), windowFrom, nil, domain.NewPage(0, 10))

	require.NoError(t, err)
	require.Len(t, resp.Ranking, 1)
	meter := resp.Ranking[0].ParkingMeter
	assert.Equal(t, 5.0, meter.FirstHour)
	assert.Equal(t, 10.0, meter.AdditionalHour)
	assert.Equal(t, 4, meter.TotalSpaces)
	assert.Equal(t, int64(3), meter.Version)
}
