package earnings

import (
	"math"
	"sort"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// meterTotal выручка одного паркомата
type meterTotal struct {
	MeterID int64
	Address domain.Address
	Total   float64
}

// paidInWindow сообщает, учитывается ли тикет в выручке окна [from, to)
func paidInWindow(t *domain.Ticket, from, to time.Time) bool {
	return t.PaymentStatus == domain.StatusPaid &&
		!t.StartTime.Before(from) &&
		t.StartTime.Before(to)
}

// sumByMeter суммирует начисления оплаченных тикетов по паркоматам
func sumByMeter(tickets []*domain.Ticket, from, to time.Time) map[int64]float64 {
	totals := make(map[int64]float64)
	for _, t := range tickets {
		if !paidInWindow(t, from, to) {
			continue
		}
		totals[t.Meter.ID] += t.TotalAmountCharged
	}
	for id, total := range totals {
		totals[id] = roundCents(total)
	}
	return totals
}

// earningsOfMeters возвращает выручку каждого паркомата из meters в их порядке,
// паркоматы без оплаченных тикетов получают 0
func earningsOfMeters(meters []*domain.ParkingMeter, tickets []*domain.Ticket, from, to time.Time) []meterTotal {
	totals := sumByMeter(tickets, from, to)

	result := make([]meterTotal, 0, len(meters))
	for _, m := range meters {
		result = append(result, meterTotal{
			MeterID: m.ID,
			Address: m.Address,
			Total:   totals[m.ID],
		})
	}
	return result
}

// rankedMeter позиция рейтинга: снимок паркомата и собранная сумма
type rankedMeter struct {
	Meter domain.MeterSnapshot
	Total float64
}

// dailyRanking рейтинг паркоматов за один календарный день
type dailyRanking struct {
	Day     time.Time
	Ranking []rankedMeter
}

// rankMeters сортирует паркоматы по выручке по убыванию.
// Снимок берётся из первого тикета паркомата, при равной выручке меньший ID идёт первым.
func rankMeters(tickets []*domain.Ticket, from, to time.Time) []rankedMeter {
	totals := sumByMeter(tickets, from, to)

	snapshots := make(map[int64]domain.MeterSnapshot, len(totals))
	for _, t := range tickets {
		if _, ok := totals[t.Meter.ID]; !ok {
			continue
		}
		if _, ok := snapshots[t.Meter.ID]; !ok {
			snapshots[t.Meter.ID] = t.Meter
		}
	}

	result := make([]rankedMeter, 0, len(totals))
	for id, total := range totals {
		result = append(result, rankedMeter{Meter: snapshots[id], Total: total})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Meter.ID < result[j].Meter.ID
	})

	return result
}

// rankMetersPerDay группирует оплаченные тикеты окна [from, to) по дню начала в loc
// и ранжирует паркоматы внутри каждого дня. Дни по возрастанию, дни без выручки пропускаются.
func rankMetersPerDay(tickets []*domain.Ticket, from, to time.Time, loc *time.Location) []dailyRanking {
	byDay := make(map[time.Time][]*domain.Ticket)
	for _, t := range tickets {
		if !paidInWindow(t, from, to) {
			continue
		}
		day := domain.DayStart(t.StartTime.In(loc))
		byDay[day] = append(byDay[day], t)
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	result := make([]dailyRanking, 0, len(days))
	for _, day := range days {
		result = append(result, dailyRanking{Day: day, Ranking: rankMeters(byDay[day], from, to)})
	}
	return result
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
