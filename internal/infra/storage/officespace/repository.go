package officespace

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с офисами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория офисов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый офис с переданным layout document
func (r *Repository) Create(ctx context.Context, name string, layoutDocument string) (*domain.OfficeSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("office_spaces").
		Columns("name", "layout_document").
		Values(name, layoutDocument).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	office := domain.OfficeSpace{
		Name:           name,
		LayoutDocument: layoutDocument,
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&office.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	office.CreatedAt = createdAt.Time

	return &office, nil
}

// GetByID получает офис по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.OfficeSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "layout_document", "created_at").
		From("office_spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var office domain.OfficeSpace
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&office.ID,
		&office.Name,
		&office.LayoutDocument,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOfficeSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan office space: %v", ErrScanRow, err)
	}

	office.CreatedAt = createdAt.Time

	return &office, nil
}

// GetAllSummaries получает все офисы с количеством столов, сортировка по имени
func (r *Repository) GetAllSummaries(ctx context.Context) ([]*domain.OfficeSpaceSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"os.id",
		"os.name",
		"os.layout_document",
		"os.created_at",
		"COUNT(d.id) AS desk_count",
	).
		From("office_spaces os").
		LeftJoin("desks d ON d.office_space_id = os.id").
		GroupBy("os.id", "os.name", "os.layout_document", "os.created_at").
		OrderBy("os.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllSummaries - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllSummaries - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	summaries := make([]*domain.OfficeSpaceSummary, 0)
	for rows.Next() {
		var summary domain.OfficeSpaceSummary
		var createdAt sql.NullTime

		err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.LayoutDocument,
			&createdAt,
			&summary.DeskCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllSummaries - scan row: %v", ErrScanRow, err)
		}

		summary.CreatedAt = createdAt.Time
		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllSummaries - rows error: %v", ErrScanRow, err)
	}

	return summaries, nil
}

// UpdateLayout обновляет layout document офиса
func (r *Repository) UpdateLayout(ctx context.Context, id string, layoutDocument string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("office_spaces").
		Set("layout_document", layoutDocument).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateLayout - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateLayout - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateLayout - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOfficeSpaceNotFound
	}

	return nil
}
