package delete_appointment

import (
	"context"
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

func (fakeService) Delete(_ context.Context, id int64) (*models.MessageResponse, error) {
	if id != 1 {
		return nil, appointments.ErrAppointmentNotFound
	}
	return &models.MessageResponse{Message: "Appointment successfully canceled"}, nil
}

func TestHandle(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/1", nil), map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	NewHandler(fakeService{}, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Appointment successfully canceled"}`, rec.Body.String())

	req = mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/2", nil), map[string]string{"id": "2"})
	rec = httptest.NewRecorder()
	NewHandler(fakeService{}, nopLogger{}).Handle(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
