package get_available_spaces

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// countOccupied считает тикеты паркомата, которые занимают место:
// статус PENDING и начало в окне [from, to)
func countOccupied(tickets []*domain.Ticket, meterID int64, from, to time.Time) int {
	occupied := 0
	for _, t := range tickets {
		if t.Meter.ID != meterID || !t.IsPending() {
			continue
		}
		if t.StartTime.Before(from) || !t.StartTime.Before(to) {
			continue
		}
		occupied++
	}
	return occupied
}

// availableSpaces возвращает свободные места, но не меньше нуля
func availableSpaces(total, occupied int) int {
	if occupied >= total {
		return 0
	}
	return total - occupied
}
