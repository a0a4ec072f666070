package tickets

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// busyHour загруженность одного часа паркомата
type busyHour struct {
	MeterID int64
	Address domain.Address
	Hour    time.Time // начало часа
	Tickets int
}

// busiestHours группирует тикеты по (паркомат, час начала) в часовом поясе loc
// и для каждого паркомата оставляет час с наибольшим числом тикетов.
// При равенстве выигрывает более ранний час. Результат отсортирован по ID паркомата.
func busiestHours(tickets []*domain.Ticket, loc *time.Location) []busyHour {
	type key struct {
		meterID int64
		hour    int64
	}

	counts := make(map[key]int)
	addresses := make(map[int64]domain.Address)

	for _, t := range tickets {
		local := t.StartTime.In(loc)
		hour := time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, loc)
		counts[key{meterID: t.Meter.ID, hour: hour.Unix()}]++
		if _, ok := addresses[t.Meter.ID]; !ok {
			addresses[t.Meter.ID] = t.Meter.Address
		}
	}

	best := make(map[int64]busyHour)
	for k, n := range counts {
		hour := time.Unix(k.hour, 0).In(loc)
		current, ok := best[k.meterID]
		if !ok || n > current.Tickets || (n == current.Tickets && hour.Before(current.Hour)) {
			best[k.meterID] = busyHour{
				MeterID: k.meterID,
				Address: addresses[k.meterID],
				Hour:    hour,
				Tickets: n,
			}
		}
	}

	result := make([]busyHour, 0, len(best))
	for _, h := range best {
		result = append(result, h)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MeterID < result[j].MeterID
	})

	return result
}
