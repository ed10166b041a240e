package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByDeskAndDate(ctx context.Context, deskID string, date time.Time) ([]*domain.Reservation, error)
}

// DeskRepository интерфейс репозитория столов
type DeskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Desk, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetDisplayName(ctx context.Context, userID string) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
