package offices

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// OfficeSpaceRepository интерфейс репозитория офисов
type OfficeSpaceRepository interface {
	Create(ctx context.Context, name string, layoutDocument string) (*domain.OfficeSpace, error)
	GetByID(ctx context.Context, id string) (*domain.OfficeSpace, error)
	GetAllSummaries(ctx context.Context) ([]*domain.OfficeSpaceSummary, error)
	UpdateLayout(ctx context.Context, id string, layoutDocument string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
