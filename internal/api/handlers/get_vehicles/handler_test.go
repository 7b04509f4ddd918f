package get_vehicles

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TintingService/internal/catalog"
	catalogService "github.com/m04kA/SMC-TintingService/internal/service/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandlers(t *testing.T) {
	h := NewHandler(catalogService.NewService(catalog.Default(), nopLogger{}))

	tests := []struct {
		name   string
		handle http.HandlerFunc
		target string
		want   string
	}{
		{name: "years", handle: h.HandleYears, target: "/api/v1/vehicles/years", want: `["2022","2023","2024"]`},
		{name: "makes unknown year", handle: h.HandleMakes, target: "/api/v1/vehicles/makes?year=1999", want: `[]`},
		{name: "models by make", handle: h.HandleModels, target: "/api/v1/vehicles/models?year=2023&make=Honda", want: `["Civic","Accord"]`},
		{name: "types", handle: h.HandleTypes, target: "/api/v1/vehicles/types", want: `["Sedan","SUV","Truck","Van","Coupe","Convertible"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handle(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}
