package pendingorder

import "errors"

var (
	// ErrOrderNotFound возвращается, когда платёжная заявка не найдена
	ErrOrderNotFound = errors.New("pendingorder.repository: order not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pendingorder.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pendingorder.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pendingorder.repository: failed to scan row")
)
