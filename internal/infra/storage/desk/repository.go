package desk

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskBookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const uniqueViolation = "23505"

// Repository репозиторий для работы со столами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый стол в офисе
// Имя стола уникально в рамках офиса (unique constraint в схеме)
func (r *Repository) Create(ctx context.Context, officeSpaceID string, name string) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("desks").
		Columns("office_space_id", "name").
		Values(officeSpaceID, name).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	desk := domain.Desk{
		OfficeSpaceID: officeSpaceID,
		Name:          name,
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&desk.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDeskAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &desk, nil
}

// GetByOfficeSpace получает все столы офиса, сортировка по имени
func (r *Repository) GetByOfficeSpace(ctx context.Context, officeSpaceID string) ([]*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "office_space_id", "name").
		From("desks").
		Where(squirrel.Eq{"office_space_id": officeSpaceID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOfficeSpace - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOfficeSpace - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	desks := make([]*domain.Desk, 0)
	for rows.Next() {
		var desk domain.Desk
		if err := rows.Scan(&desk.ID, &desk.OfficeSpaceID, &desk.Name); err != nil {
			return nil, fmt.Errorf("%w: GetByOfficeSpace - scan row: %v", ErrScanRow, err)
		}
		desks = append(desks, &desk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByOfficeSpace - rows error: %v", ErrScanRow, err)
	}

	return desks, nil
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "office_space_id", "name").
		From("desks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var desk domain.Desk
	err = executor.QueryRowContext(ctx, query, args...).Scan(&desk.ID, &desk.OfficeSpaceID, &desk.Name)

	if err == sql.ErrNoRows {
		return nil, ErrDeskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan desk: %v", ErrScanRow, err)
	}

	return &desk, nil
}

// DeleteByOfficeAndName удаляет стол по офису и имени
// Бронирования стола удаляются каскадно (FK ON DELETE CASCADE в схеме)
func (r *Repository) DeleteByOfficeAndName(ctx context.Context, officeSpaceID string, name string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("desks").
		Where(squirrel.Eq{"office_space_id": officeSpaceID, "name": name}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByOfficeAndName - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByOfficeAndName - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByOfficeAndName - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDeskNotFound
	}

	return nil
}
