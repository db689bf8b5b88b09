package deliveryinfo

import "errors"

var (
	// ErrInfoNotFound возвращается, когда данные доставки пользователя не найдены
	ErrInfoNotFound = errors.New("deliveryinfo.repository: delivery info not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("deliveryinfo.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("deliveryinfo.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("deliveryinfo.repository: failed to scan row")
)
