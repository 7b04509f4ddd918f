package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TintingService/internal/api/handlers"
	"github.com/m04kA/SMC-TintingService/internal/service/appointments"
	"github.com/m04kA/SMC-TintingService/internal/service/appointments/models"
)

const (
	msgInvalidPagination = "некорректные параметры пагинации"
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

// Handle GET /api/v1/appointments
// Query params: page, limit, status, startDate, endDate, search (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, limit, err := handlers.Pagination(r)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	query := r.URL.Query()
	result, err := h.service.List(r.Context(), &models.ListAppointmentsRequest{
		Status:    query.Get("status"),
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
		Search:    query.Get("search"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: count=%d, total=%d", len(result.Data), result.Meta.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
