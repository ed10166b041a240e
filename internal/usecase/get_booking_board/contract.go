package get_booking_board

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// OfficeSpaceRepository интерфейс репозитория офисов
type OfficeSpaceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.OfficeSpace, error)
}

// DeskRepository интерфейс репозитория столов
type DeskRepository interface {
	GetByOfficeSpace(ctx context.Context, officeSpaceID string) ([]*domain.Desk, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// DisplayNameCache кэш отображаемых имен пользователей
type DisplayNameCache interface {
	Get(ctx context.Context) (map[string]string, bool, error)
	Set(ctx context.Context, names map[string]string) error
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetDisplayNames(ctx context.Context, userIDs []string) (map[string]string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
