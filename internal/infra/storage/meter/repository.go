package meter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

const table = "parking_meters"

var columns = []string{
	"id",
	"start_time",
	"end_time",
	"first_hour_rate",
	"additional_hour_rate",
	"total_spaces",
	"zip_code",
	"street",
	"number",
	"complement",
	"neighborhood",
	"city",
	"state",
	"version",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с паркоматами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория паркоматов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый паркомат с версией 0
func (r *Repository) Create(ctx context.Context, m *domain.ParkingMeter) (*domain.ParkingMeter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"start_time",
			"end_time",
			"first_hour_rate",
			"additional_hour_rate",
			"total_spaces",
			"zip_code",
			"street",
			"number",
			"complement",
			"neighborhood",
			"city",
			"state",
		).
		Values(
			m.OperatingHours.Start.String(),
			m.OperatingHours.End.String(),
			m.Rate.FirstHour,
			m.Rate.AdditionalHour,
			m.TotalSpaces,
			m.Address.ZipCode,
			m.Address.Street,
			m.Address.Number,
			m.Address.Complement,
			m.Address.Neighborhood,
			m.Address.City,
			m.Address.State,
		).
		Suffix("RETURNING id, version, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.Version, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if _, ok := pgerr.UniqueViolation(err); ok {
			return nil, ErrDuplicateZipCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return m, nil
}

// GetByID получает паркомат по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ParkingMeter, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает паркомат по ID и блокирует строку до конца транзакции.
// Вне транзакции блокировка не берётся.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.ParkingMeter, error) {
	return r.getByID(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, id int64, lock bool) (*domain.ParkingMeter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	m, err := scanMeter(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMeterNotFound
	}
	if pgerr.IsSerializationFailure(err) {
		return nil, ErrSerialization
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan meter: %v", ErrScanRow, err)
	}

	return m, nil
}

// ExistsByZipCode проверяет, занят ли индекс другим паркоматом.
// excludeID позволяет не учитывать сам обновляемый паркомат.
func (r *Repository) ExistsByZipCode(ctx context.Context, zipCode string, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{"zip_code": zipCode}).
		Limit(1)
	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByZipCode - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByZipCode - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// Update перезаписывает паркомат, если его версия совпадает с m.Version.
// При успехе версия увеличивается на единицу.
func (r *Repository) Update(ctx context.Context, m *domain.ParkingMeter) (*domain.ParkingMeter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("start_time", m.OperatingHours.Start.String()).
		Set("end_time", m.OperatingHours.End.String()).
		Set("first_hour_rate", m.Rate.FirstHour).
		Set("additional_hour_rate", m.Rate.AdditionalHour).
		Set("total_spaces", m.TotalSpaces).
		Set("zip_code", m.Address.ZipCode).
		Set("street", m.Address.Street).
		Set("number", m.Address.Number).
		Set("complement", m.Address.Complement).
		Set("neighborhood", m.Address.Neighborhood).
		Set("city", m.Address.City).
		Set("state", m.Address.State).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": m.ID, "version": m.Version}).
		Suffix("RETURNING version, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&m.Version, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Либо паркомата нет, либо версия устарела
		if _, getErr := r.GetByID(ctx, m.ID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrVersionConflict
	}
	if err != nil {
		if _, ok := pgerr.UniqueViolation(err); ok {
			return nil, ErrDuplicateZipCode
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return m, nil
}

// GetByLocality возвращает паркоматы с точным совпадением города и/или района.
// Пустые поля фильтра не применяются. page == nil означает весь результат.
func (r *Repository) GetByLocality(ctx context.Context, filter domain.LocalityFilter, page *domain.Page) ([]*domain.ParkingMeter, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("id")

	if filter.City != nil && *filter.City != "" {
		builder = builder.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.Neighborhood != nil && *filter.Neighborhood != "" {
		builder = builder.Where(squirrel.Eq{"neighborhood": *filter.Neighborhood})
	}
	if page != nil {
		builder = builder.Limit(uint64(page.Size)).Offset(uint64(page.Offset()))
	}

	return r.list(ctx, builder, "GetByLocality")
}

func (r *Repository) list(ctx context.Context, builder squirrel.SelectBuilder, method string) ([]*domain.ParkingMeter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	meters := make([]*domain.ParkingMeter, 0)
	for rows.Next() {
		m, err := scanMeter(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan meter: %v", ErrScanRow, method, err)
		}
		meters = append(meters, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, method, err)
	}

	return meters, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMeter(row scanner) (*domain.ParkingMeter, error) {
	var m domain.ParkingMeter
	var start, end string

	err := row.Scan(
		&m.ID,
		&start,
		&end,
		&m.Rate.FirstHour,
		&m.Rate.AdditionalHour,
		&m.TotalSpaces,
		&m.Address.ZipCode,
		&m.Address.Street,
		&m.Address.Number,
		&m.Address.Complement,
		&m.Address.Neighborhood,
		&m.Address.City,
		&m.Address.State,
		&m.Version,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.OperatingHours = domain.OperatingHours{
		Start: types.TimeString(start),
		End:   types.TimeString(end),
	}

	return &m, nil
}
