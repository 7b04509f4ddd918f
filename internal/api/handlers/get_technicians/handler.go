package get_technicians

import (
	"net/http"

	"github.com/m04kA/SMC-TintingService/internal/api/handlers"
)

type Handler struct {
	service TechnicianService
}

func NewHandler(service TechnicianService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/technicians
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.GetTechnicians())
}
