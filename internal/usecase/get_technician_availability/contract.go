package get_technician_availability

import "github.com/m04kA/SMC-TintingService/internal/domain"

// TechnicianDirectory справочник техников (реализуется *catalog.Catalog)
type TechnicianDirectory interface {
	Technician(id string) (*domain.Technician, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
