package officespace

import "errors"

var (
	// ErrOfficeSpaceNotFound возвращается, когда офис не найден
	ErrOfficeSpaceNotFound = errors.New("officespace.repository: office space not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("officespace.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("officespace.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("officespace.repository: failed to scan row")
)
