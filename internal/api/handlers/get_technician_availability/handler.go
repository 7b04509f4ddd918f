package get_technician_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TintingService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-TintingService/internal/usecase/get_technician_availability"
)

const (
	msgMissingDates       = "startDate и endDate обязательны"
	msgInvalidDates       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRangeTooLarge      = "слишком большой диапазон дат"
	msgTechnicianNotFound = "техник не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/technicians/{id}/availability
// Query params: startDate, endDate (required, включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	technicianID := mux.Vars(r)["id"]
	query := r.URL.Query()

	startDate := query.Get("startDate")
	endDate := query.Get("endDate")
	if startDate == "" || endDate == "" {
		h.logger.Warn("GET /technicians/{id}/availability - Missing dates: technician_id=%s", technicianID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		TechnicianID: technicianID,
		StartDate:    startDate,
		EndDate:      endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrTechnicianNotFound):
			h.logger.Warn("GET /technicians/{id}/availability - Technician not found: technician_id=%s", technicianID)
			handlers.RespondNotFound(w, msgTechnicianNotFound)

		case errors.Is(err, getAvailability.ErrInvalidTimeInput):
			h.logger.Warn("GET /technicians/{id}/availability - Invalid dates: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, getAvailability.ErrRangeTooLarge):
			h.logger.Warn("GET /technicians/{id}/availability - Range too large: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		default:
			h.logger.Error("GET /technicians/{id}/availability - Failed to get availability: technician_id=%s, error=%v",
				technicianID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /technicians/{id}/availability - Availability retrieved: technician_id=%s, windows=%d",
		technicianID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
