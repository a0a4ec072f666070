package get_times_parked

import "time"

// Request модель запроса количества парковок автомобиля у паркомата
type Request struct {
	MeterID      int64
	LicensePlate string
	Begin        time.Time  // Первый день периода (включительно), нулевое значение - без нижней границы
	End          *time.Time // Последний день периода (включительно), по умолчанию сегодня
}

// Response модель ответа
type Response struct {
	MeterID      int64
	LicensePlate string
	From         time.Time // Начало окна, нулевое без нижней границы
	To           time.Time // Конец окна (не включительно)
	TimesParked  int
}
