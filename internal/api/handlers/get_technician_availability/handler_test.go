package get_technician_availability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TintingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-TintingService/internal/usecase/get_technician_availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type directory map[string]*domain.Technician

func (d directory) Technician(id string) (*domain.Technician, bool) {
	t, ok := d[id]
	return t, ok
}

var technicians = directory{
	"1": {
		ID:   "1",
		Name: "John Smith",
		Availability: domain.WeeklyAvailability{
			Monday: domain.DaySchedule{Start: "08:00", End: "11:00"},
		},
	},
}

func serve(id, query string) *httptest.ResponseRecorder {
	h := NewHandler(getAvailability.NewUseCase(technicians, false, nopLogger{}), nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/technicians/"+id+"/availability"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	// 2024-06-02 воскресенье, 2024-06-03 понедельник
	rec := serve("1", "?startDate=2024-06-02&endDate=2024-06-03")
	require.Equal(t, http.StatusOK, rec.Code)

	var windows []AvailabilityWindow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &windows))

	require.Len(t, windows, 3)
	assert.Equal(t, AvailabilityWindow{
		Date:           "2024-06-03",
		StartTime:      "08:00",
		EndTime:        "09:00",
		TechnicianID:   "1",
		TechnicianName: "John Smith",
	}, windows[0])
	assert.Equal(t, "10:00", windows[2].StartTime)
}

func TestHandle_EmptyRange(t *testing.T) {
	rec := serve("1", "?startDate=2024-06-05&endDate=2024-06-03")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		query string
		want  int
	}{
		{name: "unknown technician", id: "99", query: "?startDate=2024-06-03&endDate=2024-06-03", want: http.StatusNotFound},
		{name: "missing dates", id: "1", query: "", want: http.StatusBadRequest},
		{name: "bad date", id: "1", query: "?startDate=June&endDate=2024-06-03", want: http.StatusBadRequest},
		{name: "range too large", id: "1", query: "?startDate=2020-01-01&endDate=2024-01-01", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(tt.id, tt.query).Code)
		})
	}
}
