package vehicles

import (
	"context"
	"errors"
	"fmt"

	ownerRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/owner"
	vehicleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-ParkingService/internal/service/vehicles/models"
)

// Service сервис автомобилей
type Service struct {
	vehicleRepo VehicleRepository
	ownerRepo   OwnerRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(vehicleRepo VehicleRepository, ownerRepo OwnerRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		ownerRepo:   ownerRepo,
		logger:      logger,
	}
}

// Create регистрирует автомобиль существующего владельца. Номер уникален.
func (s *Service) Create(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	// 1. Валидация входных данных
	vehicle := req.ToDomainVehicle()
	if vehicle.LicensePlate == "" {
		return nil, fmt.Errorf("%w: licensePlate is required", ErrInvalidInput)
	}
	if vehicle.OwnerID <= 0 {
		return nil, fmt.Errorf("%w: ownerId must be positive", ErrInvalidInput)
	}

	s.logger.Info("Create: registering vehicle plate=%s for owner=%d", vehicle.LicensePlate, vehicle.OwnerID)

	// 2. Проверяем существование владельца
	if _, err := s.ownerRepo.GetByID(ctx, vehicle.OwnerID); err != nil {
		if errors.Is(err, ownerRepo.ErrOwnerNotFound) {
			s.logger.Warn("Create: owner id=%d not found", vehicle.OwnerID)
			return nil, ErrOwnerNotFound
		}
		s.logger.Error("Create: failed to get owner id=%d: %v", vehicle.OwnerID, err)
		return nil, fmt.Errorf("%w: Create - get owner: %v", ErrInternal, err)
	}

	// 3. Создаем автомобиль
	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		switch {
		case errors.Is(err, vehicleRepo.ErrDuplicateLicensePlate):
			s.logger.Warn("Create: plate=%s already registered", vehicle.LicensePlate)
			return nil, ErrDuplicateLicensePlate
		case errors.Is(err, vehicleRepo.ErrOwnerNotFound):
			s.logger.Warn("Create: owner id=%d deleted concurrently", vehicle.OwnerID)
			return nil, ErrOwnerNotFound
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered vehicle id=%d", created.ID)
	return models.FromDomainVehicle(created), nil
}

// GetByID получает автомобиль по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("GetByID: vehicle id=%d not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetByID: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVehicle(vehicle), nil
}
