package submit_booking

import "errors"

var (
	// ErrNotAuthenticated возвращается при запросе без идентификатора пользователя
	ErrNotAuthenticated = errors.New("user is not authenticated")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("desk not found")

	// ErrDateOutOfWindow возвращается для даты вне окна бронирования
	ErrDateOutOfWindow = errors.New("date is outside the booking window")

	// ErrSlotConflict возвращается, когда слот уже занят существующим бронированием
	ErrSlotConflict = errors.New("time slot is not available")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("internal error")
)
