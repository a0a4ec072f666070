package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// AddressRequest адрес владельца
type AddressRequest struct {
	ZipCode      string `json:"zipCode"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// CreateOwnerRequest запрос на регистрацию владельца
type CreateOwnerRequest struct {
	Name    string         `json:"name"`
	TaxID   string         `json:"taxId"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Address AddressRequest `json:"address"`
}

// ToDomainOwner конвертирует request в domain модель
func (r *CreateOwnerRequest) ToDomainOwner() *domain.Owner {
	return &domain.Owner{
		Name:  strings.TrimSpace(r.Name),
		TaxID: strings.TrimSpace(r.TaxID),
		Email: strings.ToLower(strings.TrimSpace(r.Email)),
		Phone: strings.TrimSpace(r.Phone),
		Address: domain.Address{
			ZipCode:      r.Address.ZipCode,
			Street:       r.Address.Street,
			Number:       r.Address.Number,
			Complement:   r.Address.Complement,
			Neighborhood: r.Address.Neighborhood,
			City:         r.Address.City,
			State:        r.Address.State,
		},
	}
}

// OwnerResponse ответ с данными владельца
type OwnerResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	TaxID     string         `json:"taxId"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Address   AddressRequest `json:"address"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// FromDomainOwner конвертирует domain модель в DTO
func FromDomainOwner(o *domain.Owner) *OwnerResponse {
	if o == nil {
		return nil
	}

	return &OwnerResponse{
		ID:    o.ID,
		Name:  o.Name,
		TaxID: o.TaxID,
		Email: o.Email,
		Phone: o.Phone,
		Address: AddressRequest{
			ZipCode:      o.Address.ZipCode,
			Street:       o.Address.Street,
			Number:       o.Address.Number,
			Complement:   o.Address.Complement,
			Neighborhood: o.Address.Neighborhood,
			City:         o.Address.City,
			State:        o.Address.State,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
