package update_contact

import (
	"context"

	"github.com/m04kA/SMC-TintingService/internal/service/contacts/models"
)

type ContactService interface {
	Update(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.ContactResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
