package get_available_spaces

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса свободных мест
type Request struct {
	MeterID int64     // ID паркомата
	Date    time.Time // Календарный день; нулевое значение означает сегодня
}

// Response модель ответа со свободными местами паркомата
type Response struct {
	MeterID   int64
	Address   domain.Address
	Spaces    int       // Всего мест
	Available int       // Свободно мест
	Date      time.Time // Начало дня, за который считались места
}
