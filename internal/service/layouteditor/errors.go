package layouteditor

import "errors"

var (
	// ErrOfficeSpaceNotFound возвращается, когда офис не найден
	ErrOfficeSpaceNotFound = errors.New("office space not found")

	// ErrDeskAlreadyExists возвращается при добавлении стола с занятым именем
	ErrDeskAlreadyExists = errors.New("desk with this name already exists")

	// ErrDeskNotFound возвращается при удалении несуществующего стола
	ErrDeskNotFound = errors.New("desk not found")

	// ErrNoSelection возвращается при удалении без выбранного объекта
	ErrNoSelection = errors.New("no desk shape is selected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках редактора
	ErrInternal = errors.New("layouteditor: internal error")
)
