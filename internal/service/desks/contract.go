package desks

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// DeskRepository интерфейс репозитория столов
type DeskRepository interface {
	Create(ctx context.Context, officeSpaceID string, name string) (*domain.Desk, error)
	GetByOfficeSpace(ctx context.Context, officeSpaceID string) ([]*domain.Desk, error)
	DeleteByOfficeAndName(ctx context.Context, officeSpaceID string, name string) error
}

// OfficeSpaceRepository нужен только для проверки существования офиса
type OfficeSpaceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.OfficeSpace, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
