package appointments

import (
	"context"

	"github.com/m04kA/SMC-TintingService/internal/domain"
	"github.com/m04kA/SMC-TintingService/internal/usecase/calculate_end_time"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, int64, error)
	Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// EndTimeCalculator расчёт времени окончания услуг (реализуется calculate_end_time.UseCase)
type EndTimeCalculator interface {
	Execute(ctx context.Context, req *calculate_end_time.Request) (*calculate_end_time.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
