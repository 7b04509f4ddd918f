package update_appointment

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
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

func (fakeService) Update(_ context.Context, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	if id != 1 {
		return nil, appointments.ErrAppointmentNotFound
	}
	if req.ContactID != nil && *req.ContactID != 1 {
		return nil, appointments.ErrContactNotFound
	}
	if req.Status != nil && *req.Status == "lost" {
		return nil, fmt.Errorf("%w: status must be one of [scheduled in-progress completed canceled]", appointments.ErrInvalidInput)
	}
	return &models.AppointmentResponse{ID: id, Status: "completed"}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		id   string
		body string
		want int
	}{
		{name: "ok", id: "1", body: `{"status":"completed"}`, want: http.StatusOK},
		{name: "not found", id: "3", body: `{"status":"completed"}`, want: http.StatusNotFound},
		{name: "unknown contact", id: "1", body: `{"contactId":9}`, want: http.StatusNotFound},
		{name: "bad status", id: "1", body: `{"status":"lost"}`, want: http.StatusBadRequest},
		{name: "unknown field", id: "1", body: `{"state":"done"}`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/"+tt.id, strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()

			NewHandler(fakeService{}, nopLogger{}).Handle(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
