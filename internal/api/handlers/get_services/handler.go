package get_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TintingService/internal/api/handlers"
	"github.com/m04kA/SMC-TintingService/internal/service/catalog"
)

const (
	msgPackageNotFound = "пакет услуг не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleServices GET /api/v1/services
// Query params: search, tag (optional)
func (h *Handler) HandleServices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result := h.service.GetServices(query.Get("search"), query.Get("tag"))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandlePackages GET /api/v1/services/packages
// Query params: search, tag (optional)
func (h *Handler) HandlePackages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result := h.service.GetPackages(query.Get("search"), query.Get("tag"))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandlePackage GET /api/v1/services/packages/{id}
func (h *Handler) HandlePackage(w http.ResponseWriter, r *http.Request) {
	packageID := mux.Vars(r)["id"]

	result, err := h.service.GetPackage(packageID)
	if err != nil {
		if errors.Is(err, catalog.ErrPackageNotFound) {
			h.logger.Warn("GET /services/packages/{id} - Package not found: package_id=%s", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)
			return
		}
		h.logger.Error("GET /services/packages/{id} - Failed to get package: package_id=%s, error=%v", packageID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleTags GET /api/v1/services/tags
func (h *Handler) HandleTags(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.GetTags())
}
