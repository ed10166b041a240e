package create_office_space

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

type OfficesService interface {
	Create(ctx context.Context, name string) (*domain.OfficeSpace, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
