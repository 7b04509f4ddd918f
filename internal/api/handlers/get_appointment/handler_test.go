package get_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TintingService/internal/service/appointments"
	"github.com/m04kA/SMC-TintingService/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{}

func (fakeService) GetByID(_ context.Context, id int64) (*models.AppointmentResponse, error) {
	switch id {
	case 1:
		return &models.AppointmentResponse{ID: 1, Status: "scheduled"}, nil
	case 500:
		return nil, errors.New("db down")
	default:
		return nil, appointments.ErrAppointmentNotFound
	}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{id: "1", want: http.StatusOK},
		{id: "2", want: http.StatusNotFound},
		{id: "500", want: http.StatusInternalServerError},
		{id: "0", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+tt.id, nil), map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()
			NewHandler(fakeService{}, nopLogger{}).Handle(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
