package desks

import "errors"

var (
	// ErrOfficeSpaceNotFound возвращается, когда офис не найден
	ErrOfficeSpaceNotFound = errors.New("office space not found")

	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("desk not found")

	// ErrDeskAlreadyExists возвращается при создании стола с занятым именем
	ErrDeskAlreadyExists = errors.New("desk with this name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("desks service: internal error")
)
