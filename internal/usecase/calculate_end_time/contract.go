package calculate_end_time

import "github.com/m04kA/SMC-TintingService/internal/domain"

// DurationSource источник длительностей услуг (реализуется *catalog.Catalog)
type DurationSource interface {
	DurationCatalog() domain.DurationCatalog
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
