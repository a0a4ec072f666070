package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid payment status")
)

// Response модели

// AddressResponse адрес паркомата или владельца
type AddressResponse struct {
	ZipCode      string `json:"zipCode"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// MeterSnapshotResponse снимок паркомата на момент создания тикета
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

// VehicleSnapshotResponse снимок автомобиля и владельца
type VehicleSnapshotResponse struct {
	ID           int64  `json:"id"`
	LicensePlate string `json:"licensePlate"`
	Model        string `json:"model"`
	Color        string `json:"color"`
	OwnerID      int64  `json:"ownerId"`
	OwnerName    string `json:"ownerName"`
}

// TicketResponse ответ с данными тикета
type TicketResponse struct {
	ID                 int64                   `json:"id"`
	TotalAmountCharged float64                 `json:"totalAmountCharged"`
	StartTime          time.Time               `json:"startTime"`
	EndTime            *time.Time              `json:"endTime,omitempty"`
	PaymentStatus      string                  `json:"paymentStatus"`
	ParkingMeter       MeterSnapshotResponse   `json:"parkingMeter"`
	Vehicle            VehicleSnapshotResponse `json:"vehicle"`
}

// TicketListResponse страница тикетов
type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Page    int              `json:"page"`
	Size    int              `json:"size"`
}

// TotalSpentResponse суммарные начисления по автомобилю
type TotalSpentResponse struct {
	LicensePlate string  `json:"licensePlate"`
	TotalSpent   float64 `json:"totalSpent"`
}

// BusiestHourResponse самый загруженный час паркомата
type BusiestHourResponse struct {
	MeterID int64           `json:"parkingMeterId"`
	Address AddressResponse `json:"address"`
	Hour    string          `json:"hour"` // "2024-05-01 09"
	Tickets int             `json:"tickets"`
}

// BusiestHourListResponse страница загруженных часов
type BusiestHourListResponse struct {
	Hours []BusiestHourResponse `json:"hours"`
	Page  int                   `json:"page"`
	Size  int                   `json:"size"`
}

// Методы конвертации

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

// FromDomainTicket конвертирует domain модель в DTO
func FromDomainTicket(t *domain.Ticket) *TicketResponse {
	if t == nil {
		return nil
	}

	return &TicketResponse{
		ID:                 t.ID,
		TotalAmountCharged: t.TotalAmountCharged,
		StartTime:          t.StartTime,
		EndTime:            t.EndTime,
		PaymentStatus:      string(t.PaymentStatus),
		ParkingMeter: MeterSnapshotResponse{
			ID:             t.Meter.ID,
			Start:          t.Meter.OperatingHours.Start.String(),
			End:            t.Meter.OperatingHours.End.String(),
			FirstHour:      t.Meter.Rate.FirstHour,
			AdditionalHour: t.Meter.Rate.AdditionalHour,
			TotalSpaces:    t.Meter.TotalSpaces,
			Address:        FromDomainAddress(t.Meter.Address),
			Version:        t.Meter.Version,
		},
		Vehicle: VehicleSnapshotResponse{
			ID:           t.Vehicle.ID,
			LicensePlate: t.Vehicle.LicensePlate,
			Model:        t.Vehicle.Model,
			Color:        t.Vehicle.Color,
			OwnerID:      t.Vehicle.Owner.ID,
			OwnerName:    t.Vehicle.Owner.Name,
		},
	}
}

// FromDomainTicketList конвертирует список domain моделей в DTO
func FromDomainTicketList(tickets []*domain.Ticket, page domain.Page) *TicketListResponse {
	resp := &TicketListResponse{
		Tickets: make([]TicketResponse, 0, len(tickets)),
		Page:    page.Number,
		Size:    page.Size,
	}

	for _, ticket := range tickets {
		if ticketResp := FromDomainTicket(ticket); ticketResp != nil {
			resp.Tickets = append(resp.Tickets, *ticketResp)
		}
	}

	return resp
}

// ToDomainPaymentStatus конвертирует строку в domain.PaymentStatus с валидацией
func ToDomainPaymentStatus(status string) (domain.PaymentStatus, error) {
	s := domain.PaymentStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
