package owner

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
)

const (
	taxIDConstraint = "owners_tax_id_key"
	emailConstraint = "owners_email_key"
)

// Repository репозиторий для работы с владельцами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория владельцев
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует владельца
func (r *Repository) Create(ctx context.Context, o *domain.Owner) (*domain.Owner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("owners").
		Columns(
			"name",
			"tax_id",
			"email",
			"phone",
			"zip_code",
			"street",
			"number",
			"complement",
			"neighborhood",
			"city",
			"state",
		).
		Values(
			o.Name,
			o.TaxID,
			o.Email,
			o.Phone,
			o.Address.ZipCode,
			o.Address.Street,
			o.Address.Number,
			o.Address.Complement,
			o.Address.Neighborhood,
			o.Address.City,
			o.Address.State,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if constraint, ok := pgerr.UniqueViolation(err); ok {
			switch constraint {
			case taxIDConstraint:
				return nil, ErrDuplicateTaxID
			case emailConstraint:
				return nil, ErrDuplicateEmail
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return o, nil
}

// GetByID получает владельца по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Owner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"tax_id",
		"email",
		"phone",
		"zip_code",
		"street",
		"number",
		"complement",
		"neighborhood",
		"city",
		"state",
		"created_at",
		"updated_at",
	).
		From("owners").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.Owner
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&o.Name,
		&o.TaxID,
		&o.Email,
		&o.Phone,
		&o.Address.ZipCode,
		&o.Address.Street,
		&o.Address.Number,
		&o.Address.Complement,
		&o.Address.Neighborhood,
		&o.Address.City,
		&o.Address.State,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan owner: %v", ErrScanRow, err)
	}

	return &o, nil
}
