package update_appointment

import (
	"context"

	"github.com/m04kA/SMC-TintingService/internal/service/appointments/models"
)

type AppointmentService interface {
	Update(ctx context.Context, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
