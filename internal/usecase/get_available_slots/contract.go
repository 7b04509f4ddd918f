package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TintingService/internal/domain"
	"github.com/m04kA/SMC-TintingService/pkg/types"
)

// DurationSource источник длительностей услуг (реализуется *catalog.Catalog)
type DurationSource interface {
	DurationCatalog() domain.DurationCatalog
}

// BookingConflictChecker проверяет, свободен ли интервал для новой записи
type BookingConflictChecker interface {
	IsAvailable(ctx context.Context, date time.Time, start types.TimeString, durationMinutes int) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AlwaysAvailable считает свободным любой интервал
// Существующие записи пока не учитываются при подборе слотов
type AlwaysAvailable struct{}

func (AlwaysAvailable) IsAvailable(context.Context, time.Time, types.TimeString, int) (bool, error) {
	return true, nil
}
