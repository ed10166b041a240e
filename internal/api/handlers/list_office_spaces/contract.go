package list_office_spaces

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

type OfficesService interface {
	List(ctx context.Context) ([]*domain.OfficeSpaceSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
