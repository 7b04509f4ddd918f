package get_services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TintingService/internal/catalog"
	catalogService "github.com/m04kA/SMC-TintingService/internal/service/catalog"
	"github.com/m04kA/SMC-TintingService/internal/service/catalog/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newHandler() *Handler {
	return NewHandler(catalogService.NewService(catalog.Default(), nopLogger{}), nopLogger{})
}

func TestHandleServices(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler().HandleServices(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services?tag=tires", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var services []models.ServiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &services))
	require.Len(t, services, 1)
	assert.Equal(t, "Tire Rotation", services[0].Name)
}

func TestHandlePackage(t *testing.T) {
	h := newHandler()

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/services/packages/2", nil), map[string]string{"id": "2"})
	rec := httptest.NewRecorder()
	h.HandlePackage(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var pkg models.PackageDetailsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pkg))
	assert.Equal(t, "2", pkg.ID)
	assert.Len(t, pkg.Services, 5)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/services/packages/404", nil), map[string]string{"id": "404"})
	rec = httptest.NewRecorder()
	h.HandlePackage(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlePackagesAndTags(t *testing.T) {
	h := newHandler()

	rec := httptest.NewRecorder()
	h.HandlePackages(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services/packages", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var packages []models.PackageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &packages))
	assert.Len(t, packages, 3)

	rec = httptest.NewRecorder()
	h.HandleTags(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services/tags", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var tags []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tags))
	assert.Contains(t, tags, "maintenance")
}
