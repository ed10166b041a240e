package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/reservation"
)

// Service сервис для работы с существующими бронированиями
// Создание бронирований живет в usecase submit_booking, так как требует
// транзакционной проверки доступности слота
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Get возвращает бронирование по идентификатору
func (s *Service) Get(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			s.logger.Warn("Get: reservation id=%s not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Get: repository error for reservation id=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return res, nil
}

// GetByFilter возвращает бронирования по фильтру (столы + период)
func (s *Service) GetByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	result, err := s.reservationRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByFilter: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByFilter - repository error: %v", ErrInternal, err)
	}

	return result, nil
}

// Cancel удаляет бронирование после проверки владения
// Отменить бронирование может только создавший его пользователь
func (s *Service) Cancel(ctx context.Context, reservationID string, userID string) error {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%s not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !domain.CanCancel(res, userID) {
		s.logger.Warn("Cancel: user id=%s is not the owner of reservation id=%s", userID, reservationID)
		return ErrNotOwner
	}

	if err := s.reservationRepo.Delete(ctx, reservationID); err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			// Кто-то успел отменить раньше, для клиента результат тот же
			s.logger.Warn("Cancel: reservation id=%s already deleted", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: user id=%s cancelled reservation id=%s", userID, reservationID)
	return nil
}
