package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	deskRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
)

// UseCase use case для создания бронирования стола
type UseCase struct {
	reservationRepo ReservationRepository
	deskRepo        DeskRepository
	userClient      UserServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	deskRepo DeskRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		deskRepo:        deskRepo,
		userClient:      userClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// доступность слота перепроверяется внутри транзакции по свежему набору
// бронирований стола на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: user=%s, desk=%s, date=%s, slot=%s",
		req.UserID, req.DeskID, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем окно бронирования
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("SubmitBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем существование стола
	if _, err := uc.deskRepo.GetByID(ctx, req.DeskID); err != nil {
		if errors.Is(err, deskRepo.ErrDeskNotFound) {
			uc.logger.Warn("SubmitBooking: desk id=%s not found", req.DeskID)
			return nil, ErrDeskNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get desk id=%s: %v", req.DeskID, err)
		return nil, fmt.Errorf("%w: failed to get desk: %v", ErrInternal, err)
	}

	// 4. Получаем отображаемое имя пользователя для снапшота
	// При недоступности UserService деградируем до заглушки, бронирование
	// важнее красивого имени
	displayName, err := uc.userClient.GetDisplayName(ctx, req.UserID)
	if err != nil {
		uc.logger.Warn("SubmitBooking: failed to get display name for user id=%s, using fallback: %v",
			req.UserID, err)
		displayName = domain.UnknownUserName
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем бронирования стола на дату с блокировкой (FOR UPDATE)
		existing, err := uc.reservationRepo.GetByDeskAndDate(txCtx, req.DeskID, req.Date)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 5.2. Проверяем доступность слота по правилам движка
		availability := domain.ComputeDayAvailability(existing)
		if !availability.CanBook(req.Slot) {
			uc.logger.Warn("SubmitBooking: slot %s not available for desk=%s date=%s (morning=%t, afternoon=%t, full_day=%t)",
				req.Slot, req.DeskID, req.Date.Format(domain.DateFormat),
				availability.MorningBooked, availability.AfternoonBooked, availability.FullDayBooked)
			return ErrSlotConflict
		}

		// 5.3. Создаем бронирование со снапшотом имени пользователя
		reservation := &domain.Reservation{
			DeskID:      req.DeskID,
			UserID:      req.UserID,
			Date:        domain.TruncateToDay(req.Date),
			Slot:        req.Slot,
			DisplayName: displayName,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitBooking: successfully created reservation id=%s", result.ID)

	return &Response{
		ID:          result.ID,
		DeskID:      result.DeskID,
		UserID:      result.UserID,
		Date:        result.Date,
		Slot:        result.Slot,
		DisplayName: result.DisplayName,
		CreatedAt:   result.CreatedAt,
	}, nil
}
