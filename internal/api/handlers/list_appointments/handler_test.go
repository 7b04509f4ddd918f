package list_appointments

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TintingService/internal/service/appointments"
	"github.com/m04kA/SMC-TintingService/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got *models.ListAppointmentsRequest
}

func (f *fakeService) List(_ context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	f.got = req
	if req.Status == "archived" {
		return nil, fmt.Errorf("%w: unknown status %q", appointments.ErrInvalidInput, req.Status)
	}
	return &models.AppointmentListResponse{Data: []models.AppointmentResponse{}}, nil
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	target := "/api/v1/appointments?status=scheduled&startDate=2024-06-01&endDate=2024-06-30&search=film&limit=20"
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &models.ListAppointmentsRequest{
		Status:    "scheduled",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
		Search:    "film",
		Limit:     20,
	}, svc.got)
	assert.JSONEq(t, `{"data":[],"meta":{"total":0,"page":0,"limit":0,"totalPages":0}}`, rec.Body.String())
}

func TestHandle_InvalidFilter(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?status=archived", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
