package get_server_time

// Clock интерфейс синхронизированных часов сервиса
type Clock interface {
	NowMillis() int64
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
