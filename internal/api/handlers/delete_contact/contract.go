package delete_contact

import (
	"context"

	"github.com/m04kA/SMC-TintingService/internal/service/contacts/models"
)

type ContactService interface {
	Delete(ctx context.Context, id int64) (*models.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
