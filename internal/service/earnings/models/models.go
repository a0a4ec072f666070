package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// LocalityRequest фильтр по городу и/или району
type LocalityRequest struct {
	City         *string
	Neighborhood *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r LocalityRequest) ToDomainFilter() domain.LocalityFilter {
	return domain.LocalityFilter{City: r.City, Neighborhood: r.Neighborhood}
}

// AddressResponse адрес паркомата
type AddressResponse struct {
	ZipCode      string `json:"zipCode"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// EarningsResponse выручка паркомата за период
type EarningsResponse struct {
	MeterID int64           `json:"parkingMeterId"`
	Address AddressResponse `json:"address"`
	Earned  float64         `json:"earned"`
	From    string          `json:"from"` // "2024-05-01"
	To      string          `json:"to"`   // последний день включительно
}

// EarningsListResponse страница выручки паркоматов
type EarningsListResponse struct {
	Earnings []EarningsResponse `json:"earnings"`
	Page     int                `json:"page"`
	Size     int                `json:"size"`
}

// MeterSnapshotResponse снимок паркомата из тикета
type MeterSnapshotResponse struct {
	ID             int64           `json:"id"`
	Start          string          `json:"start"` // "05:00"
	End            string          `json:"end"`   // "15:00"
	FirstHour      float64         `json:"firstHour"`
	AdditionalHour float64         `json:"additionalHour"`
	TotalSpaces    int             `json:"totalSpaces"`
	Address        AddressResponse `json:"address"`
	Version        int64           `json:"version"`
}

// RankingEntryResponse позиция в рейтинге паркоматов по выручке
type RankingEntryResponse struct {
	Position       int                   `json:"position"`
	ParkingMeter   MeterSnapshotResponse `json:"parkingMeter"`
	TotalCollected float64               `json:"totalCollected"`
}

// RankingResponse страница рейтинга
type RankingResponse struct {
	Ranking []RankingEntryResponse `json:"ranking"`
	Page    int                    `json:"page"`
	Size    int                    `json:"size"`
}

// DailyRankingResponse рейтинг паркоматов за один день
type DailyRankingResponse struct {
	Date    string                 `json:"date"` // "2024-05-01"
	Ranking []RankingEntryResponse `json:"ranking"`
}

// DailyRankingListResponse страница дней с рейтингами
type DailyRankingListResponse struct {
	Days []DailyRankingResponse `json:"days"`
	Page int                    `json:"page"`
	Size int                    `json:"size"`
}

// FromDomainMeterSnapshot конвертирует снимок паркомата в DTO
func FromDomainMeterSnapshot(m domain.MeterSnapshot) MeterSnapshotResponse {
	return MeterSnapshotResponse{
		ID:             m.ID,
		Start:          m.OperatingHours.Start.String(),
		End:            m.OperatingHours.End.String(),
		FirstHour:      m.Rate.FirstHour,
		AdditionalHour: m.Rate.AdditionalHour,
		TotalSpaces:    m.TotalSpaces,
		Address:        FromDomainAddress(m.Address),
		Version:        m.Version,
	}
}

// FromDomainAddress конвертирует адрес в DTO
func FromDomainAddress(a domain.Address) AddressResponse {
	return AddressResponse{
		ZipCode:      a.ZipCode,
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}

// NewEarningsResponse собирает ответ; to - конец полуоткрытого окна
func NewEarningsResponse(meterID int64, address domain.Address, earned float64, from, to time.Time) EarningsResponse {
	return EarningsResponse{
		MeterID: meterID,
		Address: FromDomainAddress(address),
		Earned:  earned,
		From:    from.Format(domain.DateFormat),
		To:      to.AddDate(0, 0, -1).Format(domain.DateFormat),
	}
}
