package calculate_end_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TintingService/internal/api/handlers"
	calculateEndTime "github.com/m04kA/SMC-TintingService/internal/usecase/calculate_end_time"
)

const (
	msgMissingStart   = "startDate и startTime обязательны"
	msgInvalidStart   = "некорректные дата или время начала, ожидается YYYY-MM-DD и HH:MM"
	msgUnknownService = "неизвестный ID услуги"
)

type Handler struct {
	useCase CalculateEndTimeUseCase
	logger  Logger
}

func NewHandler(useCase CalculateEndTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/scheduling/calculate-end-time
// Query params: startDate, startTime (required), serviceIds (через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startDate := query.Get("startDate")
	startTime := query.Get("startTime")
	if startDate == "" || startTime == "" {
		h.logger.Warn("GET /scheduling/calculate-end-time - Missing start: startDate=%q, startTime=%q", startDate, startTime)
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}

	useCaseReq := &calculateEndTime.Request{
		StartDate:  startDate,
		StartTime:  startTime,
		ServiceIDs: handlers.ParseIDList(query.Get("serviceIds")),
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculateEndTime.ErrInvalidTimeInput):
			h.logger.Warn("GET /scheduling/calculate-end-time - Invalid start: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStart)

		case errors.Is(err, calculateEndTime.ErrUnknownService):
			h.logger.Warn("GET /scheduling/calculate-end-time - Unknown service: %v", err)
			handlers.RespondBadRequest(w, msgUnknownService)

		default:
			h.logger.Error("GET /scheduling/calculate-end-time - Failed to calculate: start=%s %s, error=%v", startDate, startTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /scheduling/calculate-end-time - Calculated: start=%s %s, duration=%d",
		startDate, startTime, result.DurationMinutes)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
