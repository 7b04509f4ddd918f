package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TintingService/internal/api/handlers"
	"github.com/m04kA/SMC-TintingService/internal/service/appointments"
	"github.com/m04kA/SMC-TintingService/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgContactNotFound    = "клиент не найден"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Validation failed: contact_id=%d, error=%v", req.ContactID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, appointments.ErrContactNotFound):
			h.logger.Warn("POST /appointments - Contact not found: contact_id=%d", req.ContactID)
			handlers.RespondNotFound(w, msgContactNotFound)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: contact_id=%d, error=%v", req.ContactID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, contact_id=%d",
		result.ID, result.ContactID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
