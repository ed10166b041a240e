package desk

import "errors"

var (
	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("desk.repository: desk not found")

	// ErrDeskAlreadyExists возвращается при попытке создать стол с занятым
	// в рамках офиса именем
	ErrDeskAlreadyExists = errors.New("desk.repository: desk with this name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("desk.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("desk.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("desk.repository: failed to scan row")
)
