package ticket

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const (
	table = "tickets"

	pendingVehicleIndex = "tickets_one_pending_per_vehicle"
)

var columns = []string{
	"id",
	"total_amount_charged",
	"start_time",
	"end_time",
	"payment_status",
	"meter_snapshot",
	"vehicle_snapshot",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с тикетами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тикетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый тикет вместе со снимками паркомата и автомобиля.
// Нарушение частичного уникального индекса (один PENDING на автомобиль)
// возвращается как ErrPendingTicketExists.
func (r *Repository) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	meterJSON, err := json.Marshal(t.Meter)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal meter: %v", ErrSnapshot, err)
	}
	vehicleJSON, err := json.Marshal(t.Vehicle)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal vehicle: %v", ErrSnapshot, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"total_amount_charged",
			"start_time",
			"end_time",
			"payment_status",
			"meter_id",
			"vehicle_id",
			"license_plate",
			"meter_snapshot",
			"vehicle_snapshot",
		).
		Values(
			t.TotalAmountCharged,
			t.StartTime,
			t.EndTime,
			string(t.PaymentStatus),
			t.Meter.ID,
			t.Vehicle.ID,
			t.Vehicle.LicensePlate,
			meterJSON,
			vehicleJSON,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if constraint, ok := pgerr.UniqueViolation(err); ok && constraint == pendingVehicleIndex {
			return nil, ErrPendingTicketExists
		}
		if pgerr.IsSerializationFailure(err) {
			return nil, ErrSerialization
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// GetByID получает тикет по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTicket(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan ticket: %v", ErrScanRow, err)
	}

	return t, nil
}

// GetByFilter возвращает тикеты, подходящие под фильтр, в порядке start_time, id
func (r *Repository) GetByFilter(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := applyFilter(psqlbuilder.Select(columns...).From(table), filter).
		OrderBy("start_time", "id")
	if filter.Page != nil {
		builder = builder.Limit(uint64(filter.Page.Size)).Offset(uint64(filter.Page.Offset()))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tickets := make([]*domain.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByFilter - scan ticket: %v", ErrScanRow, err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - rows iteration: %v", ErrScanRow, err)
	}

	return tickets, nil
}

// CountByFilter считает тикеты, подходящие под фильтр. Пагинация игнорируется.
func (r *Repository) CountByFilter(ctx context.Context, filter domain.TicketFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From(table), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByFilter - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		if pgerr.IsSerializationFailure(err) {
			return 0, ErrSerialization
		}
		return 0, fmt.Errorf("%w: CountByFilter - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// SumChargedByLicensePlate возвращает сумму начислений и количество тикетов по номеру автомобиля
func (r *Repository) SumChargedByLicensePlate(ctx context.Context, licensePlate string) (float64, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(total_amount_charged), 0)", "COUNT(*)").
		From(table).
		Where(squirrel.Eq{"license_plate": licensePlate}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: SumChargedByLicensePlate - build select query: %v", ErrBuildQuery, err)
	}

	var total float64
	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total, &count); err != nil {
		return 0, 0, fmt.Errorf("%w: SumChargedByLicensePlate - scan: %v", ErrScanRow, err)
	}

	return total, count, nil
}

// Transition атомарно переводит тикет из статуса from в статус to (compare-and-swap).
// Если тикет уже не в статусе from, возвращается ErrStatusMismatch.
func (r *Repository) Transition(
	ctx context.Context,
	id int64,
	from, to domain.PaymentStatus,
	amount float64,
	endTime time.Time,
) (*domain.Ticket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("payment_status", string(to)).
		Set("total_amount_charged", amount).
		Set("end_time", endTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "payment_status": string(from)}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Transition - build update query: %v", ErrBuildQuery, err)
	}

	t, err := scanTicket(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrStatusMismatch
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Transition - execute update: %v", ErrExecQuery, err)
	}

	return t, nil
}

func applyFilter(builder squirrel.SelectBuilder, filter domain.TicketFilter) squirrel.SelectBuilder {
	if len(filter.MeterIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"meter_id": filter.MeterIDs})
	}
	if filter.VehicleID != nil {
		builder = builder.Where(squirrel.Eq{"vehicle_id": *filter.VehicleID})
	}
	if filter.LicensePlate != nil {
		builder = builder.Where(squirrel.Eq{"license_plate": *filter.LicensePlate})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"payment_status": string(*filter.Status)})
	}
	if filter.StartFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"start_time": *filter.StartFrom})
	}
	if filter.StartTo != nil {
		builder = builder.Where(squirrel.Lt{"start_time": *filter.StartTo})
	}
	return builder
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTicket(row scanner) (*domain.Ticket, error) {
	var t domain.Ticket
	var status string
	var endTime sql.NullTime
	var meterJSON, vehicleJSON []byte

	err := row.Scan(
		&t.ID,
		&t.TotalAmountCharged,
		&t.StartTime,
		&endTime,
		&status,
		&meterJSON,
		&vehicleJSON,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.PaymentStatus = domain.PaymentStatus(status)
	t.StartTime = t.StartTime.UTC()
	if endTime.Valid {
		end := endTime.Time.UTC()
		t.EndTime = &end
	}
	if err := json.Unmarshal(meterJSON, &t.Meter); err != nil {
		return nil, fmt.Errorf("%w: meter: %v", ErrSnapshot, err)
	}
	if err := json.Unmarshal(vehicleJSON, &t.Vehicle); err != nil {
		return nil, fmt.Errorf("%w: vehicle: %v", ErrSnapshot, err)
	}

	return &t, nil
}
