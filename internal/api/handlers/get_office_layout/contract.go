package get_office_layout

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

type OfficesService interface {
	GetLayout(ctx context.Context, officeSpaceID string) ([]domain.DeskShape, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
