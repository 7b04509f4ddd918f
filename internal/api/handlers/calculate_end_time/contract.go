package calculate_end_time

import (
	"context"

	calculateEndTime "github.com/m04kA/SMC-TintingService/internal/usecase/calculate_end_time"
)

type CalculateEndTimeUseCase interface {
	Execute(ctx context.Context, req *calculateEndTime.Request) (*calculateEndTime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
