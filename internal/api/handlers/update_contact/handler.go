package update_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TintingService/internal/api/handlers"
	"github.com/m04kA/SMC-TintingService/internal/service/contacts"
	"github.com/m04kA/SMC-TintingService/internal/service/contacts/models"
)

const (
	msgInvalidContactID   = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "клиент не найден"
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

// Handle PUT /api/v1/contacts/{id}
// Передаются только изменяемые поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	contactID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /contacts/{id} - Invalid contact ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidContactID)
		return
	}

	var req models.UpdateContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /contacts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), contactID, &req)
	if err != nil {
		switch {
		case errors.Is(err, contacts.ErrContactNotFound):
			h.logger.Warn("PUT /contacts/{id} - Contact not found: contact_id=%d", contactID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, contacts.ErrInvalidInput):
			h.logger.Warn("PUT /contacts/{id} - Validation failed: contact_id=%d, error=%v", contactID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /contacts/{id} - Failed to update contact: contact_id=%d, error=%v", contactID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /contacts/{id} - Contact updated successfully: contact_id=%d", contactID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
