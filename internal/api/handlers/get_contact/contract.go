package get_contact

import (
	"context"

	"github.com/m04kA/SMC-TintingService/internal/service/contacts/models"
)

type ContactService interface {
	GetByID(ctx context.Context, id int64) (*models.ContactResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
