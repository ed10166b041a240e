package get_booking_board

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrOfficeSpaceNotFound возвращается, когда офис не найден
	ErrOfficeSpaceNotFound = errors.New("office space not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("internal error")
)
