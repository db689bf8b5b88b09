package deliveryconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация доставки не найдена
	ErrConfigNotFound = errors.New("deliveryconfig.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("deliveryconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("deliveryconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("deliveryconfig.repository: failed to scan row")
)
