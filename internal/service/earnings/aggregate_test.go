package earnings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	windowFrom = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	windowTo   = time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
)

func paid(id, meterID int64, amount float64, start time.Time) *domain.Ticket {
	return &domain.Ticket{
		ID:                 id,
		TotalAmountCharged: amount,
		StartTime:          start,
		PaymentStatus:      domain.StatusPaid,
		Meter: domain.MeterSnapshot{
			ID:      meterID,
			Address: domain.Address{ZipCode: "0100100" + string(rune('0'+meterID))},
		},
	}
}

func TestSumByMeter_OnlyPaidInsideWindow(t *testing.T) {
	pending := paid(4, 1, 100, windowFrom.Add(time.Hour))
	pending.PaymentStatus = domain.StatusPending
	cancelled := paid(5, 1, 100, windowFrom.Add(time.Hour))
	cancelled.PaymentStatus = domain.StatusCancelled

	tickets := []*domain.Ticket{
		paid(1, 1, 5, windowFrom),
		paid(2, 1, 10.1, windowFrom.Add(23*time.Hour)),
		paid(3, 1, 50, windowTo), // граница окна не входит
		pending,
		cancelled,
		paid(6, 2, 7.5, windowFrom.Add(-time.Minute)),
	}

	totals := sumByMeter(tickets, windowFrom, windowTo)

	assert.Equal(t, map[int64]float64{1: 15.1}, totals)
}

func TestEarningsOfMeters_ZeroForMetersWithoutTickets(t *testing.T) {
	meters := []*domain.ParkingMeter{{ID: 1}, {ID: 2}, {ID: 3}}
	tickets := []*domain.Ticket{
		paid(1, 3, 20, windowFrom.Add(time.Hour)),
		paid(2, 1, 5, windowFrom.Add(2*time.Hour)),
	}

	result := earningsOfMeters(meters, tickets, windowFrom, windowTo)

	require.Len(t, result, 3)
	assert.Equal(t, int64(1), result[0].MeterID)
	assert.Equal(t, 5.0, result[0].Total)
	assert.Equal(t, 0.0, result[1].Total)
	assert.Equal(t, 20.0, result[2].Total)
}

func TestRankMeters_DescendingWithStableTies(t *testing.T) {
	tickets := []*domain.Ticket{
		paid(1, 3, 10, windowFrom.Add(time.Hour)),
		paid(2, 1, 10, windowFrom.Add(time.Hour)),
		paid(3, 2, 25, windowFrom.Add(time.Hour)),
		paid(4, 1, 5, windowFrom.Add(2*time.Hour)),
		paid(5, 4, 10, windowFrom.Add(3*time.Hour)),
	}

	ranked := rankMeters(tickets, windowFrom, windowTo)

	require.Len(t, ranked, 4)
	ids := make([]int64, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.Meter.ID)
	}
	assert.Equal(t, []int64{2, 1, 3, 4}, ids)
	assert.Equal(t, 15.0, ranked[1].Total)
	assert.Equal(t, "01001002", ranked[0].Meter.Address.ZipCode)
}

func TestRankMeters_Empty(t *testing.T) {
	assert.Empty(t, rankMeters(nil, windowFrom, windowTo))
}

func TestRankMetersPerDay_RanksWithinEachDay(t *testing.T) {
	from := windowFrom
	to := windowFrom.AddDate(0, 0, 3)
	tickets := []*domain.Ticket{
		paid(1, 1, 10, from.Add(9*time.Hour)),
		paid(2, 2, 20, from.Add(10*time.Hour)),
		paid(3, 1, 5, from.Add(11*time.Hour)),
		paid(4, 3, 7, from.Add(24*time.Hour+8*time.Hour)),
		paid(5, 1, 7, from.Add(24*time.Hour+9*time.Hour)),
		paid(6, 2, 40, from.Add(72*time.Hour)), // вне окна
	}

	days := rankMetersPerDay(tickets, from, to, time.UTC)

	require.Len(t, days, 2)
	assert.Equal(t, from, days[0].Day)
	require.Len(t, days[0].Ranking, 2)
	assert.Equal(t, int64(2), days[0].Ranking[0].Meter.ID)
	assert.Equal(t, 20.0, days[0].Ranking[0].Total)
	assert.Equal(t, 15.0, days[0].Ranking[1].Total)

	assert.Equal(t, from.AddDate(0, 0, 1), days[1].Day)
	require.Len(t, days[1].Ranking, 2)
	assert.Equal(t, int64(1), days[1].Ranking[0].Meter.ID)
	assert.Equal(t, int64(3), days[1].Ranking[1].Meter.ID)
}

func TestRankMetersPerDay_BucketsInLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 2)
	// 02:00 UTC второго мая это 23:00 первого мая по местному времени
	tickets := []*domain.Ticket{
		paid(1, 1, 10, time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC)),
		paid(2, 1, 5, time.Date(2024, 5, 2, 4, 0, 0, 0, time.UTC)),
	}

	days := rankMetersPerDay(tickets, from, to, loc)

	require.Len(t, days, 2)
	assert.Equal(t, "2024-05-01", days[0].Day.Format(domain.DateFormat))
	assert.Equal(t, 10.0, days[0].Ranking[0].Total)
	assert.Equal(t, "2024-05-02", days[1].Day.Format(domain.DateFormat))
	assert.Equal(t, 5.0, days[1].Ranking[0].Total)
}
