package tickets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/broker"
	"github.com/m04kA/SMC-ParkingService/internal/infra/cache/spent"
	ticketRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/ticket"
)

type fakeRepo struct {
	tickets    map[int64]*domain.Ticket
	lastFilter domain.TicketFilter
	// beforeTransition эмулирует параллельное изменение между чтением и CAS
	beforeTransition func(t *domain.Ticket)
	// afterSum эмулирует оплату, закоммиченную сразу после чтения суммы
	afterSum func()
}

func newFakeRepo(tickets ...*domain.Ticket) *fakeRepo {
	r := &fakeRepo{tickets: map[int64]*domain.Ticket{}}
	for _, t := range tickets {
		r.tickets[t.ID] = t
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Ticket, error) {
	t, ok := r.tickets[id]
	if !ok {
		return nil, ticketRepo.ErrTicketNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeRepo) GetByFilter(_ context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	r.lastFilter = filter
	out := make([]*domain.Ticket, 0)
	for _, t := range r.tickets {
		if filter.Status != nil && t.PaymentStatus != *filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeRepo) SumChargedByLicensePlate(_ context.Context, plate string) (float64, int, error) {
	var total float64
	var count int
	for _, t := range r.tickets {
		if t.Vehicle.LicensePlate == plate {
			total += t.TotalAmountCharged
			count++
		}
	}
	if r.afterSum != nil {
		hook := r.afterSum
		r.afterSum = nil
		hook()
	}
	return total, count, nil
}

func (r *fakeRepo) Transition(_ context.Context, id int64, from, to domain.PaymentStatus, amount float64, end time.Time) (*domain.Ticket, error) {
	t, ok := r.tickets[id]
	if !ok {
		return nil, ticketRepo.ErrTicketNotFound
	}
	if r.beforeTransition != nil {
		r.beforeTransition(t)
	}
	if t.PaymentStatus != from {
		return nil, ticketRepo.ErrStatusMismatch
	}
	t.PaymentStatus = to
	t.TotalAmountCharged = amount
	t.EndTime = &end
	cp := *t
	return &cp, nil
}

type fakeCache struct {
	values      map[string]float64
	generations map[string]int64
	invalidated []string
	getErr      error
}

func (c *fakeCache) Get(_ context.Context, plate string) (float64, bool, error) {
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	v, ok := c.values[plate]
	return v, ok, nil
}

func (c *fakeCache) Generation(_ context.Context, plate string) (int64, error) {
	return c.generations[plate], nil
}

func (c *fakeCache) Set(_ context.Context, plate string, total float64, generation int64) error {
	if c.generations[plate] != generation {
		return spent.ErrStale
	}
	if c.values == nil {
		c.values = map[string]float64{}
	}
	c.values[plate] = total
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, plate string) error {
	c.invalidated = append(c.invalidated, plate)
	delete(c.values, plate)
	if c.generations == nil {
		c.generations = map[string]int64{}
	}
	c.generations[plate]++
	return nil
}

type fakePublisher struct{ events []broker.TicketEvent }

func (p *fakePublisher) Publish(_ context.Context, e broker.TicketEvent) error {
	p.events = append(p.events, e)
	return nil
}

type fakeMetrics struct{ transitions []string }

func (m *fakeMetrics) IncTicketTransition(status string) {
	m.transitions = append(m.transitions, status)
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var start = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func pendingTicket(id int64, plate string) *domain.Ticket {
	return &domain.Ticket{
		ID:            id,
		StartTime:     start,
		PaymentStatus: domain.StatusPending,
		Meter: domain.MeterSnapshot{
			ID:   1,
			Rate: domain.Rate{FirstHour: 5.0, AdditionalHour: 10.0},
		},
		Vehicle: domain.VehicleSnapshot{ID: id, LicensePlate: plate},
	}
}

type fixture struct {
	repo      *fakeRepo
	cache     *fakeCache
	publisher *fakePublisher
	metrics   *fakeMetrics
	clock     *fixedTime
	svc       *Service
}

func newFixture(tickets ...*domain.Ticket) *fixture {
	f := &fixture{
		repo:      newFakeRepo(tickets...),
		cache:     &fakeCache{},
		publisher: &fakePublisher{},
		metrics:   &fakeMetrics{},
		clock:     &fixedTime{now: start},
	}
	f.svc = NewService(f.repo, f.cache, f.publisher, f.metrics, time.UTC, nopLogger{})
	f.svc.timeProvider = f.clock
	return f
}

func TestPay_ChargesFirstHour(t *testing.T) {
	f := newFixture(pendingTicket(1, "ABC1234"))
	f.clock.now = start.Add(45 * time.Minute)

	resp, err := f.svc.Pay(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "PAID", resp.PaymentStatus)
	assert.Equal(t, 5.0, resp.TotalAmountCharged)
	require.NotNil(t, resp.EndTime)
	assert.Equal(t, f.clock.now, *resp.EndTime)

	assert.Equal(t, []string{"ABC1234"}, f.cache.invalidated)
	assert.Equal(t, []string{"PAID"}, f.metrics.transitions)
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, broker.EventTicketPaid, f.publisher.events[0].Type)
	assert.Equal(t, 5.0, f.publisher.events[0].Amount)
}

func TestPay_NinetyMinutes(t *testing.T) {
	f := newFixture(pendingTicket(1, "ABC1234"))
	f.clock.now = start.Add(90 * time.Minute)

	resp, err := f.svc.Pay(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 15.0, resp.TotalAmountCharged)
}

func TestPay_Twice(t *testing.T) {
	f := newFixture(pendingTicket(1, "ABC1234"))
	f.clock.now = start.Add(45 * time.Minute)

	_, err := f.svc.Pay(context.Background(), 1)
	require.NoError(t, err)

	f.clock.now = start.Add(5 * time.Hour)
	_, err = f.svc.Pay(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAlreadySettledOrCancelled)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	got, err := f.svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.TotalAmountCharged)
}

func TestPay_CancelledTicket(t *testing.T) {
	cancelled := pendingTicket(1, "ABC1234")
	cancelled.PaymentStatus = domain.StatusCancelled
	f := newFixture(cancelled)

	_, err := f.svc.Pay(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAlreadySettledOrCancelled)
	assert.Empty(t, f.publisher.events)
}

func TestPay_ConcurrentSettlement(t *testing.T) {
	f := newFixture(pendingTicket(1, "ABC1234"))
	f.repo.beforeTransition = func(t *domain.Ticket) { t.PaymentStatus = domain.StatusPaid }

	_, err := f.svc.Pay(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAlreadySettledOrCancelled)
	assert.Empty(t, f.publisher.events)
}

func TestPay_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Pay(context.Background(), 404)

	assert.ErrorIs(t, err, ErrTicketNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancel_WithinGracePeriod(t *testing.T) {
	f := newFixture(pendingTicket(1, "ABC1234"))
	f.clock.now = start.Add(4 * time.Minute)

	resp, err := f.svc.Cancel(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.PaymentStatus)
	assert.Zero(t, resp.TotalAmountCharged)
	require.NotNil(t, resp.EndTime)
	assert.Equal(t, f.clock.now, *resp.EndTime)
	assert.Equal(t, []string{"CANCELLED"}, f.metrics.transitions)
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, broker.EventTicketCancelled, f.publisher.events[0].Type)
}

func TestCancel_GracePeriodExpired(t *testing.T) {
	f := newFixture(pendingTicket(1, "ABC1234"))
	f.clock.now = start.Add(6 * time.Minute)

	_, err := f.svc.Cancel(context.Background(), 1)

	assert.ErrorIs(t, err, ErrGracePeriodExpired)
	assert.Equal(t, domain.StatusPending, f.repo.tickets[1].PaymentStatus)
}

func TestCancel_TerminalStates(t *testing.T) {
	cancelled := pendingTicket(1, "ABC1234")
	cancelled.PaymentStatus = domain.StatusCancelled
	paid := pendingTicket(2, "DEF5678")
	paid.PaymentStatus = domain.StatusPaid

	f := newFixture(cancelled, paid)
	f.clock.now = start.Add(time.Minute)

	_, err := f.svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	_, err = f.svc.Cancel(context.Background(), 2)
	assert.ErrorIs(t, err, ErrAlreadySettledOrCancelled)
}

func TestCancel_ConcurrentCancel(t *testing.T) {
	f := newFixture(pendingTicket(1, "ABC1234"))
	f.clock.now = start.Add(time.Minute)
	f.repo.beforeTransition = func(t *domain.Ticket) { t.PaymentStatus = domain.StatusCancelled }

	_, err := f.svc.Cancel(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestTotalSpentByVehicle(t *testing.T) {
	a := pendingTicket(1, "ABC1234")
	a.PaymentStatus, a.TotalAmountCharged = domain.StatusPaid, 5
	b := pendingTicket(2, "ABC1234")
	b.PaymentStatus, b.TotalAmountCharged = domain.StatusPaid, 15
	f := newFixture(a, b, pendingTicket(3, "ABC1234"))

	resp, err := f.svc.TotalSpentByVehicle(context.Background(), "ABC1234")

	require.NoError(t, err)
	assert.Equal(t, 20.0, resp.TotalSpent)
	assert.Equal(t, 20.0, f.cache.values["ABC1234"])
}

func TestTotalSpentByVehicle_PaymentDuringReadIsNotCached(t *testing.T) {
	f := newFixture(pendingTicket(1, "ABC1234"))
	f.clock.now = start.Add(30 * time.Minute)
	f.repo.afterSum = func() {
		_, err := f.svc.Pay(context.Background(), 1)
		require.NoError(t, err)
	}

	first, err := f.svc.TotalSpentByVehicle(context.Background(), "ABC1234")
	require.NoError(t, err)
	assert.Equal(t, 0.0, first.TotalSpent)
	assert.NotContains(t, f.cache.values, "ABC1234")

	second, err := f.svc.TotalSpentByVehicle(context.Background(), "ABC1234")
	require.NoError(t, err)
	assert.Equal(t, 5.0, second.TotalSpent)
	assert.Equal(t, 5.0, f.cache.values["ABC1234"])
}

func TestTotalSpentByVehicle_CacheHit(t *testing.T) {
	f := newFixture()
	f.cache.values = map[string]float64{"ABC1234": 42}

	resp, err := f.svc.TotalSpentByVehicle(context.Background(), "ABC1234")

	require.NoError(t, err)
	assert.Equal(t, 42.0, resp.TotalSpent)
}

func TestTotalSpentByVehicle_CacheErrorFallsBack(t *testing.T) {
	a := pendingTicket(1, "ABC1234")
	a.TotalAmountCharged = 5
	f := newFixture(a)
	f.cache.getErr = errors.New("redis down")

	resp, err := f.svc.TotalSpentByVehicle(context.Background(), "ABC1234")

	require.NoError(t, err)
	assert.Equal(t, 5.0, resp.TotalSpent)
}

func TestTotalSpentByVehicle_NoTickets(t *testing.T) {
	f := newFixture()

	_, err := f.svc.TotalSpentByVehicle(context.Background(), "ZZZ0000")

	assert.ErrorIs(t, err, ErrNoTicketsForVehicle)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindByDateRange_StartAfterEnd(t *testing.T) {
	f := newFixture()

	_, err := f.svc.FindByDateRange(context.Background(), start.Add(time.Hour), start, domain.NewPage(0, 10))

	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFindByDateRange_PassesWindow(t *testing.T) {
	f := newFixture(pendingTicket(1, "ABC1234"))
	end := start.Add(24 * time.Hour)

	resp, err := f.svc.FindByDateRange(context.Background(), start, end, domain.NewPage(0, 10))

	require.NoError(t, err)
	assert.Len(t, resp.Tickets, 1)
	assert.Equal(t, start, *f.repo.lastFilter.StartFrom)
	assert.Equal(t, end, *f.repo.lastFilter.StartTo)
	assert.Equal(t, 10, f.repo.lastFilter.Page.Size)
}

func TestFindByStatus(t *testing.T) {
	paid := pendingTicket(2, "DEF5678")
	paid.PaymentStatus = domain.StatusPaid
	f := newFixture(pendingTicket(1, "ABC1234"), paid)

	resp, err := f.svc.FindByStatus(context.Background(), "paid", domain.NewPage(0, 10))
	require.NoError(t, err)
	require.Len(t, resp.Tickets, 1)
	assert.Equal(t, int64(2), resp.Tickets[0].ID)

	_, err = f.svc.FindByStatus(context.Background(), "REFUNDED", domain.NewPage(0, 10))
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFindBusiestHour(t *testing.T) {
	f := newFixture(pendingTicket(1, "ABC1234"), pendingTicket(2, "DEF5678"))

	resp, err := f.svc.FindBusiestHour(context.Background(), start, start.Add(time.Hour), domain.NewPage(0, 10))

	require.NoError(t, err)
	require.Len(t, resp.Hours, 1)
	assert.Equal(t, "2024-05-01 09", resp.Hours[0].Hour)
	assert.Equal(t, 2, resp.Hours[0].Tickets)
}
