package offices

import "errors"

var (
	// ErrOfficeSpaceNotFound возвращается, когда офис не найден
	ErrOfficeSpaceNotFound = errors.New("office space not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMalformedLayout возвращается при попытке сохранить некорректный layout document
	ErrMalformedLayout = errors.New("malformed layout document")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("offices service: internal error")
)
