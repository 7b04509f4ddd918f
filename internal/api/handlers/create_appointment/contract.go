package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-TintingService/internal/service/appointments/models"
)

type AppointmentService interface {
	Create(ctx context.Context, req *models.CreateAppointmentRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
