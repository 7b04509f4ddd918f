package create_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TintingService/internal/api/handlers"
	"github.com/m04kA/SMC-TintingService/internal/service/contacts"
	"github.com/m04kA/SMC-TintingService/internal/service/contacts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/contacts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contacts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, contacts.ErrInvalidInput) {
			h.logger.Warn("POST /contacts - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /contacts - Failed to create contact: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /contacts - Contact created successfully: contact_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
