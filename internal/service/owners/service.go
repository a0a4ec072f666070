package owners

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	ownerRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/owner"
	"github.com/m04kA/SMC-ParkingService/internal/service/owners/models"
)

// Service сервис владельцев автомобилей
type Service struct {
	ownerRepo OwnerRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса владельцев
func NewService(ownerRepo OwnerRepository, logger Logger) *Service {
	return &Service{
		ownerRepo: ownerRepo,
		logger:    logger,
	}
}

// Create регистрирует владельца. ИНН и email уникальны.
func (s *Service) Create(ctx context.Context, req *models.CreateOwnerRequest) (*models.OwnerResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	owner := req.ToDomainOwner()
	if err := validateOwner(owner); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	s.logger.Info("Create: registering owner tax_id=%s", owner.TaxID)

	created, err := s.ownerRepo.Create(ctx, owner)
	if err != nil {
		switch {
		case errors.Is(err, ownerRepo.ErrDuplicateTaxID):
			s.logger.Warn("Create: tax_id=%s already registered", owner.TaxID)
			return nil, ErrDuplicateTaxID
		case errors.Is(err, ownerRepo.ErrDuplicateEmail):
			s.logger.Warn("Create: email=%s already registered", owner.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered owner id=%d", created.ID)
	return models.FromDomainOwner(created), nil
}

// GetByID получает владельца по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.OwnerResponse, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ownerRepo.ErrOwnerNotFound) {
			s.logger.Warn("GetByID: owner id=%d not found", id)
			return nil, ErrOwnerNotFound
		}
		s.logger.Error("GetByID: repository error for owner id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOwner(owner), nil
}

func validateOwner(o *domain.Owner) error {
	if o.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if o.TaxID == "" {
		return fmt.Errorf("%w: taxId is required", ErrInvalidInput)
	}
	if o.Email == "" || !strings.Contains(o.Email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	return nil
}
