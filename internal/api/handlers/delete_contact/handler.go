package delete_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TintingService/internal/api/handlers"
	"github.com/m04kA/SMC-TintingService/internal/service/contacts"
)

const (
	msgInvalidContactID = "некорректный ID клиента"
	msgNotFound         = "клиент не найден"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/contacts/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	contactID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /contacts/{id} - Invalid contact ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidContactID)
		return
	}

	result, err := h.service.Delete(r.Context(), contactID)
	if err != nil {
		if errors.Is(err, contacts.ErrContactNotFound) {
			h.logger.Warn("DELETE /contacts/{id} - Contact not found: contact_id=%d", contactID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /contacts/{id} - Failed to delete contact: contact_id=%d, error=%v", contactID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /contacts/{id} - Contact deleted successfully: contact_id=%d", contactID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
