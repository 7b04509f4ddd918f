package get_vehicles

import (
	"net/http"

	"github.com/m04kA/SMC-TintingService/internal/api/handlers"
)

type Handler struct {
	service VehicleService
}

func NewHandler(service VehicleService) *Handler {
	return &Handler{service: service}
}

// HandleYears GET /api/v1/vehicles/years
func (h *Handler) HandleYears(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.GetYears())
}

// HandleMakes GET /api/v1/vehicles/makes?year=2023
func (h *Handler) HandleMakes(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.GetMakes(r.URL.Query().Get("year")))
}

// HandleModels GET /api/v1/vehicles/models?year=2023&make=Toyota
func (h *Handler) HandleModels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	handlers.RespondJSON(w, http.StatusOK, h.service.GetModels(query.Get("year"), query.Get("make")))
}

// HandleTypes GET /api/v1/vehicles/types
func (h *Handler) HandleTypes(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.GetTypes())
}
