package get_available_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TintingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TintingService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type staticDurations domain.DurationCatalog

func (s staticDurations) DurationCatalog() domain.DurationCatalog {
	return domain.DurationCatalog(s)
}

var testDurations = staticDurations{"1": 30, "2": 20, "3": 45}

func serve(t *testing.T, strict bool, target string) *httptest.ResponseRecorder {
	t.Helper()
	uc := getAvailableSlots.NewUseCase(testDurations, nil, strict, nopLogger{})
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(t, false, "/api/v1/scheduling/available-slots?date=2024-06-01&serviceIds=1,%202,,3")
	require.Equal(t, http.StatusOK, rec.Code)

	var slots []AvailableSlot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slots))

	require.Len(t, slots, 18)
	assert.Equal(t, AvailableSlot{Date: "2024-06-01", StartTime: "08:00", DurationMinutes: 95}, slots[0])
	assert.Equal(t, "16:30", slots[17].StartTime)
}

func TestHandle_NoServices(t *testing.T) {
	rec := serve(t, false, "/api/v1/scheduling/available-slots?date=2024-06-01")
	require.Equal(t, http.StatusOK, rec.Code)

	var slots []AvailableSlot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slots))
	require.Len(t, slots, 18)
	assert.Zero(t, slots[0].DurationMinutes)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		strict bool
		target string
		want   int
	}{
		{name: "missing date", target: "/api/v1/scheduling/available-slots", want: http.StatusBadRequest},
		{name: "bad date", target: "/api/v1/scheduling/available-slots?date=01.06.2024", want: http.StatusBadRequest},
		{name: "unknown service lenient", target: "/api/v1/scheduling/available-slots?date=2024-06-01&serviceIds=99", want: http.StatusOK},
		{name: "unknown service strict", strict: true, target: "/api/v1/scheduling/available-slots?date=2024-06-01&serviceIds=99", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.strict, tt.target)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
