package create_ticket

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/broker"
	meterRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/meter"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/pgerr"
	ticketRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/ticket"
	vehicleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// UseCase use case для создания тикета (начала парковочной сессии)
type UseCase struct {
	ticketRepo   TicketRepository
	meterRepo    MeterRepository
	vehicleRepo  VehicleRepository
	ownerRepo    OwnerRepository
	publisher    EventPublisher
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location - часовой пояс, в котором заданы часы работы паркоматов.
func NewUseCase(
	ticketRepo TicketRepository,
	meterRepo MeterRepository,
	vehicleRepo VehicleRepository,
	ownerRepo OwnerRepository,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		ticketRepo:   ticketRepo,
		meterRepo:    meterRepo,
		vehicleRepo:  vehicleRepo,
		ownerRepo:    ownerRepo,
		publisher:    publisher,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case создания тикета.
// Строка паркомата блокируется (FOR UPDATE) в сериализуемой транзакции,
// поэтому проверка свободных мест и вставка не гоняются между собой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTicket: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateTicket: vehicle=%d, meter=%d", req.VehicleID, req.MeterID)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Ticket

	// 3. Выполняем проверки и вставку в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Автомобиль
		vehicle, err := uc.vehicleRepo.GetByID(txCtx, req.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				uc.logger.Warn("CreateTicket: vehicle id=%d not found", req.VehicleID)
				return ErrVehicleNotFound
			}
			uc.logger.Error("CreateTicket: failed to get vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
		}

		owner, err := uc.ownerRepo.GetByID(txCtx, vehicle.OwnerID)
		if err != nil {
			uc.logger.Error("CreateTicket: failed to get owner id=%d of vehicle id=%d: %v", vehicle.OwnerID, vehicle.ID, err)
			return fmt.Errorf("%w: failed to get owner: %v", ErrInternal, err)
		}

		// 3.2. Паркомат с блокировкой строки
		meter, err := uc.meterRepo.GetByIDForUpdate(txCtx, req.MeterID)
		if err != nil {
			if errors.Is(err, meterRepo.ErrMeterNotFound) {
				uc.logger.Warn("CreateTicket: meter id=%d not found", req.MeterID)
				return ErrMeterNotFound
			}
			if isSerializationConflict(err) {
				return ErrConcurrentCreation
			}
			uc.logger.Error("CreateTicket: failed to get meter id=%d: %v", req.MeterID, err)
			return fmt.Errorf("%w: failed to get meter: %v", ErrInternal, err)
		}

		// 3.3. Время закрытия
		if err := checkOpen(meter, now.In(uc.location)); err != nil {
			uc.logger.Warn("CreateTicket: %v", err)
			return err
		}

		// 3.4. Активный тикет автомобиля
		vehiclePending, err := uc.ticketRepo.CountByFilter(txCtx, domain.TicketFilter{
			VehicleID: ptr.Ptr(vehicle.ID),
			Status:    ptr.Ptr(domain.StatusPending),
		})
		if err != nil {
			if isSerializationConflict(err) {
				return ErrConcurrentCreation
			}
			uc.logger.Error("CreateTicket: failed to count pending tickets of vehicle id=%d: %v", vehicle.ID, err)
			return fmt.Errorf("%w: failed to count vehicle tickets: %v", ErrInternal, err)
		}
		if vehiclePending > 0 {
			uc.logger.Warn("CreateTicket: vehicle id=%d already has a pending ticket", vehicle.ID)
			return ErrVehicleAlreadyParked
		}

		// 3.5. Свободные места
		meterPending, err := uc.ticketRepo.CountByFilter(txCtx, domain.TicketFilter{
			MeterIDs: []int64{meter.ID},
			Status:   ptr.Ptr(domain.StatusPending),
		})
		if err != nil {
			if isSerializationConflict(err) {
				return ErrConcurrentCreation
			}
			uc.logger.Error("CreateTicket: failed to count pending tickets of meter id=%d: %v", meter.ID, err)
			return fmt.Errorf("%w: failed to count meter tickets: %v", ErrInternal, err)
		}
		if err := checkCapacity(meter, meterPending); err != nil {
			uc.logger.Warn("CreateTicket: meter id=%d: %v", meter.ID, err)
			return err
		}

		uc.logger.Info("CreateTicket: meter id=%d has %d/%d spaces taken", meter.ID, meterPending, meter.TotalSpaces)

		// 3.6. Сохраняем тикет со снимками
		ticket := &domain.Ticket{
			TotalAmountCharged: 0,
			StartTime:          now.UTC(),
			PaymentStatus:      domain.StatusPending,
			Meter:              meter.Snapshot(),
			Vehicle:            vehicle.Snapshot(owner),
		}

		created, err := uc.ticketRepo.Create(txCtx, ticket)
		if err != nil {
			if errors.Is(err, ticketRepo.ErrPendingTicketExists) {
				uc.logger.Warn("CreateTicket: vehicle id=%d already parked (unique index)", vehicle.ID)
				return ErrVehicleAlreadyParked
			}
			if isSerializationConflict(err) {
				return ErrConcurrentCreation
			}
			uc.logger.Error("CreateTicket: failed to create ticket: %v", err)
			return fmt.Errorf("%w: failed to create ticket: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if pgerr.IsSerializationFailure(err) {
			uc.logger.Warn("CreateTicket: serialization failure for meter=%d: %v", req.MeterID, err)
			return nil, ErrConcurrentCreation
		}
		return nil, err
	}

	uc.logger.Info("CreateTicket: successfully created ticket id=%d", result.ID)
	uc.metrics.IncTicketTransition(string(domain.StatusPending))

	// 4. Событие публикуется после фиксации транзакции, ошибка не влияет на результат
	if err := uc.publisher.Publish(ctx, broker.NewTicketEvent(broker.EventTicketCreated, result, now)); err != nil {
		uc.logger.Error("CreateTicket: failed to publish event for ticket id=%d: %v", result.ID, err)
	}

	return toResponse(result), nil
}

// isSerializationConflict распознаёт конфликт сериализуемой транзакции на любом шаге
func isSerializationConflict(err error) bool {
	return errors.Is(err, ticketRepo.ErrSerialization) ||
		errors.Is(err, meterRepo.ErrSerialization) ||
		pgerr.IsSerializationFailure(err)
}
