package get_times_parked

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// countVisits считает тикеты автомобиля у паркомата, начатые в окне [from, to).
// Статус не важен: отменённые и оплаченные тикеты тоже визиты.
func countVisits(tickets []*domain.Ticket, meterID int64, licensePlate string, from, to time.Time) int {
	visits := 0
	for _, t := range tickets {
		if t.Meter.ID != meterID || t.Vehicle.LicensePlate != licensePlate {
			continue
		}
		if t.StartTime.Before(from) || !t.StartTime.Before(to) {
			continue
		}
		visits++
	}
	return visits
}
