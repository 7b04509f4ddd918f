package get_technicians

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TintingService/internal/service/catalog/models"
)

type staticTechnicians []models.TechnicianResponse

func (s staticTechnicians) GetTechnicians() []models.TechnicianResponse {
	return s
}

func TestHandle(t *testing.T) {
	h := NewHandler(staticTechnicians{{ID: "1", Name: "John Smith"}})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/technicians", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var technicians []models.TechnicianResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &technicians))
	require.Len(t, technicians, 1)
	assert.Equal(t, "John Smith", technicians[0].Name)
}
