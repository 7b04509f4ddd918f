package get_technician_availability

import (
	"context"

	getAvailability "github.com/m04kA/SMC-TintingService/internal/usecase/get_technician_availability"
)

type GetAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
