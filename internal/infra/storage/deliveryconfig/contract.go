package deliveryconfig

import "github.com/m04kA/SMC-DeliveryService/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
