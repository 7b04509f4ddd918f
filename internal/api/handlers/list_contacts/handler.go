package list_contacts

import (
	"net/http"

	"github.com/m04kA/SMC-TintingService/internal/api/handlers"
	"github.com/m04kA/SMC-TintingService/internal/service/contacts/models"
)

const (
	msgInvalidPagination = "некорректные параметры пагинации"
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

// Handle GET /api/v1/contacts
// Query params: page, limit, search (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, limit, err := handlers.Pagination(r)
	if err != nil {
		h.logger.Warn("GET /contacts - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListContactsRequest{
		Search: r.URL.Query().Get("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.logger.Error("GET /contacts - Failed to list contacts: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /contacts - Contacts retrieved successfully: count=%d, total=%d", len(result.Data), result.Meta.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
