package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// CreateMeterRequest запрос на создание паркомата.
// Улица, район, город и штат определяются по индексу через сервис адресов.
type CreateMeterRequest struct {
	StartTime          string  `json:"startTime"` // "08:00"
	EndTime            string  `json:"endTime"`   // "18:00"
	FirstHourRate      float64 `json:"firstHourRate"`
	AdditionalHourRate float64 `json:"additionalHourRate"`
	TotalSpaces        int     `json:"totalSpaces"`
	ZipCode            string  `json:"zipCode"`
	Number             string  `json:"number"`
	Complement         string  `json:"complement,omitempty"`
}

// UpdateMeterRequest запрос на обновление паркомата.
// Version - версия, прочитанная клиентом; при несовпадении обновление отклоняется.
type UpdateMeterRequest struct {
	CreateMeterRequest
	Version int64 `json:"version"`
}

// LocalityRequest фильтр списка паркоматов по городу и/или району
type LocalityRequest struct {
	City         *string
	Neighborhood *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r LocalityRequest) ToDomainFilter() domain.LocalityFilter {
	return domain.LocalityFilter{City: r.City, Neighborhood: r.Neighborhood}
}

// Response модели

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

// MeterResponse ответ с данными паркомата
type MeterResponse struct {
	ID                 int64           `json:"id"`
	StartTime          string          `json:"startTime"`
	EndTime            string          `json:"endTime"`
	FirstHourRate      float64         `json:"firstHourRate"`
	AdditionalHourRate float64         `json:"additionalHourRate"`
	TotalSpaces        int             `json:"totalSpaces"`
	Address            AddressResponse `json:"address"`
	Version            int64           `json:"version"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// MeterListResponse страница паркоматов
type MeterListResponse struct {
	Meters []MeterResponse `json:"parkingMeters"`
	Page   int             `json:"page"`
	Size   int             `json:"size"`
}

// Методы конвертации

// FromDomainMeter конвертирует domain модель в DTO
func FromDomainMeter(m *domain.ParkingMeter) *MeterResponse {
	if m == nil {
		return nil
	}

	return &MeterResponse{
		ID:                 m.ID,
		StartTime:          m.OperatingHours.Start.String(),
		EndTime:            m.OperatingHours.End.String(),
		FirstHourRate:      m.Rate.FirstHour,
		AdditionalHourRate: m.Rate.AdditionalHour,
		TotalSpaces:        m.TotalSpaces,
		Address: AddressResponse{
			ZipCode:      m.Address.ZipCode,
			Street:       m.Address.Street,
			Number:       m.Address.Number,
			Complement:   m.Address.Complement,
			Neighborhood: m.Address.Neighborhood,
			City:         m.Address.City,
			State:        m.Address.State,
		},
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainMeterList конвертирует страницу паркоматов в DTO
func FromDomainMeterList(meters []*domain.ParkingMeter, page domain.Page) *MeterListResponse {
	resp := &MeterListResponse{
		Meters: make([]MeterResponse, 0, len(meters)),
		Page:   page.Number,
		Size:   page.Size,
	}
	for _, m := range meters {
		resp.Meters = append(resp.Meters, *FromDomainMeter(m))
	}
	return resp
}
