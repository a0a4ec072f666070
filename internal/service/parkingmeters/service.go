package parkingmeters

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	meterRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/meter"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/addressservice"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingmeters/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// Service сервис для управления паркоматами
type Service struct {
	meterRepo     MeterRepository
	addressClient AddressServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса паркоматов
func NewService(
	meterRepo MeterRepository,
	addressClient AddressServiceClient,
	logger Logger,
) *Service {
	return &Service{
		meterRepo:     meterRepo,
		addressClient: addressClient,
		logger:        logger,
	}
}

// Create создает новый паркомат
// Индекс должен быть уникален, адрес определяется через сервис адресов
func (s *Service) Create(ctx context.Context, req *models.CreateMeterRequest) (*models.MeterResponse, error) {
	// 1. Валидируем входные данные
	meter, err := validateMeterData(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	s.logger.Info("Create: creating parking meter zip=%s, spaces=%d", meter.Address.ZipCode, meter.TotalSpaces)

	// 2. Проверяем уникальность индекса
	if err := s.checkZipCodeFree(ctx, "Create", meter.Address.ZipCode, nil); err != nil {
		return nil, err
	}

	// 3. Определяем адрес по индексу
	if err := s.resolveAddress(ctx, "Create", &meter.Address); err != nil {
		return nil, err
	}

	// 4. Создаем паркомат
	created, err := s.meterRepo.Create(ctx, meter)
	if err != nil {
		if errors.Is(err, meterRepo.ErrDuplicateZipCode) {
			s.logger.Warn("Create: zip=%s registered concurrently", meter.Address.ZipCode)
			return nil, ErrDuplicateZipCode
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created parking meter id=%d", created.ID)
	return models.FromDomainMeter(created), nil
}

// GetByID получает паркомат по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.MeterResponse, error) {
	meter, err := s.getMeter(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainMeter(meter), nil
}

// Update перезаписывает паркомат с проверкой версии.
// Индекс может остаться прежним; при смене индекса адрес определяется заново.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateMeterRequest) (*models.MeterResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	// 1. Валидируем входные данные
	updated, err := validateMeterData(&req.CreateMeterRequest)
	if err != nil {
		s.logger.Warn("Update: validation failed for meter id=%d: %v", id, err)
		return nil, err
	}

	s.logger.Info("Update: updating parking meter id=%d, version=%d", id, req.Version)

	// 2. Получаем текущее состояние
	current, err := s.getMeter(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	// 3. Если индекс изменился - проверяем уникальность и определяем адрес
	if updated.Address.ZipCode != current.Address.ZipCode {
		if err := s.checkZipCodeFree(ctx, "Update", updated.Address.ZipCode, ptr.Ptr(id)); err != nil {
			return nil, err
		}
		if err := s.resolveAddress(ctx, "Update", &updated.Address); err != nil {
			return nil, err
		}
	} else {
		number, complement := updated.Address.Number, updated.Address.Complement
		updated.Address = current.Address
		updated.Address.Number = number
		updated.Address.Complement = complement
	}

	// 4. Записываем с версией, которую прислал клиент
	updated.ID = id
	updated.Version = req.Version

	saved, err := s.meterRepo.Update(ctx, updated)
	if err != nil {
		switch {
		case errors.Is(err, meterRepo.ErrMeterNotFound):
			s.logger.Warn("Update: meter id=%d deleted concurrently", id)
			return nil, ErrMeterNotFound
		case errors.Is(err, meterRepo.ErrVersionConflict):
			s.logger.Warn("Update: version conflict for meter id=%d (client version=%d)", id, req.Version)
			return nil, ErrVersionConflict
		case errors.Is(err, meterRepo.ErrDuplicateZipCode):
			s.logger.Warn("Update: zip=%s registered concurrently", updated.Address.ZipCode)
			return nil, ErrDuplicateZipCode
		}
		s.logger.Error("Update: repository error for meter id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated meter id=%d, new version=%d", saved.ID, saved.Version)
	return models.FromDomainMeter(saved), nil
}

// ListByLocality возвращает страницу паркоматов города и/или района
func (s *Service) ListByLocality(ctx context.Context, req models.LocalityRequest, page domain.Page) (*models.MeterListResponse, error) {
	filter := req.ToDomainFilter()
	if filter.IsEmpty() {
		s.logger.Warn("ListByLocality: neither city nor neighborhood provided")
		return nil, ErrMissingFilter
	}

	s.logger.Info("ListByLocality: city=%s, neighborhood=%s, page=%d, size=%d",
		ptr.Value(filter.City), ptr.Value(filter.Neighborhood), page.Number, page.Size)

	meters, err := s.meterRepo.GetByLocality(ctx, filter, &page)
	if err != nil {
		s.logger.Error("ListByLocality: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByLocality - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMeterList(meters, page), nil
}

func (s *Service) getMeter(ctx context.Context, method string, id int64) (*domain.ParkingMeter, error) {
	meter, err := s.meterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, meterRepo.ErrMeterNotFound) {
			s.logger.Warn("%s: meter id=%d not found", method, id)
			return nil, ErrMeterNotFound
		}
		s.logger.Error("%s: repository error for meter id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - get meter: %v", ErrInternal, method, err)
	}
	return meter, nil
}

func (s *Service) checkZipCodeFree(ctx context.Context, method, zipCode string, excludeID *int64) error {
	exists, err := s.meterRepo.ExistsByZipCode(ctx, zipCode, excludeID)
	if err != nil {
		s.logger.Error("%s: failed to check zip=%s: %v", method, zipCode, err)
		return fmt.Errorf("%w: %s - check zip code: %v", ErrInternal, method, err)
	}
	if exists {
		s.logger.Warn("%s: zip=%s already registered", method, zipCode)
		return ErrDuplicateZipCode
	}
	return nil
}

// resolveAddress заполняет улицу, район, город и штат; номер и дополнение остаются из запроса
func (s *Service) resolveAddress(ctx context.Context, method string, address *domain.Address) error {
	resolved, err := s.addressClient.GetAddress(ctx, address.ZipCode)
	if err != nil {
		switch {
		case errors.Is(err, addressservice.ErrZipCodeNotFound):
			s.logger.Warn("%s: zip=%s not found by address service", method, address.ZipCode)
			return ErrZipCodeNotFound
		case errors.Is(err, addressservice.ErrInvalidZipCode):
			s.logger.Warn("%s: zip=%s rejected by address service", method, address.ZipCode)
			return fmt.Errorf("%w: invalid zip code %q", ErrInvalidInput, address.ZipCode)
		}
		s.logger.Error("%s: address lookup failed for zip=%s: %v", method, address.ZipCode, err)
		return fmt.Errorf("%w: %v", ErrAddressLookupFailed, err)
	}

	address.Street = resolved.Street
	address.Neighborhood = resolved.Neighborhood
	address.City = resolved.City
	address.State = resolved.State
	if address.Complement == "" {
		address.Complement = resolved.Complement
	}
	return nil
}
