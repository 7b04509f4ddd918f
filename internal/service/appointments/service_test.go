package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TintingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-TintingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-TintingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-TintingService/internal/usecase/calculate_end_time"
	"github.com/m04kA/SMC-TintingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type inlineTx struct{ calls int }

func (tx *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type staticDurations domain.DurationCatalog

func (s staticDurations) DurationCatalog() domain.DurationCatalog {
	return domain.DurationCatalog(s)
}

// fakeRepo хранит записи в памяти, contacts - существующие клиенты
type fakeRepo struct {
	appointments map[int64]*domain.Appointment
	contacts     map[int64]bool
	nextID       int64
	lastFilter   domain.AppointmentsFilter
	err          error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: map[int64]*domain.Appointment{},
		contacts:     map[int64]bool{1: true, 2: true},
		nextID:       1,
	}
}

func (r *fakeRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	if !r.contacts[a.ContactID] {
		return nil, appointmentRepo.ErrContactNotFound
	}
	a.ID = r.nextID
	r.nextID++
	a.CreatedAt = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	a.UpdatedAt = a.CreatedAt
	stored := *a
	r.appointments[a.ID] = &stored
	return a, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, int64, error) {
	r.lastFilter = filter
	if r.err != nil {
		return nil, 0, r.err
	}
	result := make([]*domain.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		result = append(result, a)
	}
	return result, int64(len(result)), nil
}

func (r *fakeRepo) Update(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if _, ok := r.appointments[a.ID]; !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	if !r.contacts[a.ContactID] {
		return nil, appointmentRepo.ErrContactNotFound
	}
	stored := *a
	r.appointments[a.ID] = &stored
	return a, nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}

func newTestService(repo *fakeRepo, tx *inlineTx) *Service {
	durations := staticDurations{"1": 30, "2": 20, "3": 45}
	calc := calculate_end_time.NewUseCase(durations, time.UTC, false, nopLogger{})
	return NewService(repo, calc, tx, time.UTC, nopLogger{})
}

func validCreate() *models.CreateAppointmentRequest {
	return &models.CreateAppointmentRequest{
		ContactID: 1,
		VehicleDetails: models.VehicleDetails{
			Year:        "2023",
			Make:        "Toyota",
			Model:       "Camry",
			VehicleType: "Sedan",
		},
		Services: []models.AppointmentService{
			{
				PackageID:    "1",
				ServiceIDs:   []string{"1", "2"},
				TechnicianID: "1",
				StartDate:    "2024-06-03",
				StartTime:    "09:00",
			},
			{
				PackageID:     "2",
				ServiceIDs:    []string{"3"},
				EstimatedTime: 45,
				TechnicianID:  "2",
				StartDate:     "2024-06-03",
				StartTime:     "13:30",
			},
		},
		StartDate: "2024-06-03",
		Notes:     ptr.Ptr("ceramic film"),
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &inlineTx{})

	created, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, string(domain.AppointmentStatusScheduled), created.Status)
	assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), created.StartDate)

	require.Len(t, created.Services, 2)
	require.NotNil(t, created.Services[0].EstimatedEndDate)
	assert.Equal(t, time.Date(2024, time.June, 3, 9, 50, 0, 0, time.UTC), *created.Services[0].EstimatedEndDate)
	assert.Equal(t, time.Date(2024, time.June, 3, 14, 15, 0, 0, time.UTC), *created.Services[1].EstimatedEndDate)

	require.NotNil(t, created.EndDate)
	assert.Equal(t, time.Date(2024, time.June, 3, 14, 15, 0, 0, time.UTC), *created.EndDate)
	assert.Equal(t, "Toyota", created.VehicleDetails.Make)
}

func TestCreate_EstimatedTimeFallback(t *testing.T) {
	svc := newTestService(newFakeRepo(), &inlineTx{})

	req := validCreate()
	req.Services = []models.AppointmentService{{
		PackageID:     "custom",
		ServiceIDs:    []string{"unknown"},
		EstimatedTime: 90,
		TechnicianID:  "1",
		StartDate:     "2024-06-03",
		StartTime:     "10:00",
	}}

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 3, 11, 30, 0, 0, time.UTC), *created.Services[0].EstimatedEndDate)
}

func TestCreate_ExplicitEndDate(t *testing.T) {
	svc := newTestService(newFakeRepo(), &inlineTx{})

	req := validCreate()
	req.EndDate = ptr.Ptr("2024-06-03T18:00:00Z")

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 3, 18, 0, 0, 0, time.UTC), created.EndDate.UTC())
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(newFakeRepo(), &inlineTx{})

	tests := []struct {
		name   string
		mutate func(r *models.CreateAppointmentRequest)
	}{
		{name: "missing contact", mutate: func(r *models.CreateAppointmentRequest) { r.ContactID = 0 }},
		{name: "no services", mutate: func(r *models.CreateAppointmentRequest) { r.Services = nil }},
		{name: "missing vehicle make", mutate: func(r *models.CreateAppointmentRequest) { r.VehicleDetails.Make = "" }},
		{name: "missing technician", mutate: func(r *models.CreateAppointmentRequest) { r.Services[0].TechnicianID = "" }},
		{name: "bad service time", mutate: func(r *models.CreateAppointmentRequest) { r.Services[0].StartTime = "9am" }},
		{name: "bad service date", mutate: func(r *models.CreateAppointmentRequest) { r.Services[1].StartDate = "03.06.2024" }},
		{name: "bad start date", mutate: func(r *models.CreateAppointmentRequest) { r.StartDate = "tomorrow" }},
		{name: "end before start", mutate: func(r *models.CreateAppointmentRequest) { r.EndDate = ptr.Ptr("2024-06-02") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(req)
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_ContactNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), &inlineTx{})

	req := validCreate()
	req.ContactID = 77

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestCreate_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("db down")
	svc := newTestService(repo, &inlineTx{})

	_, err := svc.Create(context.Background(), validCreate())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdate(t *testing.T) {
	repo := newFakeRepo()
	tx := &inlineTx{}
	svc := newTestService(repo, tx)

	created, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &models.UpdateAppointmentRequest{
		Status: ptr.Ptr("in-progress"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, "in-progress", updated.Status)
	assert.Equal(t, created.EndDate, updated.EndDate)
	assert.Equal(t, "ceramic film", *updated.Notes)

	updated, err = svc.Update(context.Background(), created.ID, &models.UpdateAppointmentRequest{
		Services: &[]models.AppointmentService{{
			PackageID:    "3",
			ServiceIDs:   []string{"3", "3"},
			TechnicianID: "1",
			StartDate:    "2024-06-04",
			StartTime:    "08:00",
		}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Services, 1)
	assert.Equal(t, time.Date(2024, time.June, 4, 9, 30, 0, 0, time.UTC), *updated.EndDate)
}

func TestUpdate_Errors(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &inlineTx{})

	created, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateAppointmentRequest{Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateAppointmentRequest{StartDate: ptr.Ptr("someday")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), 99, &models.UpdateAppointmentRequest{Status: ptr.Ptr("completed")})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateAppointmentRequest{ContactID: ptr.Ptr(int64(42))})
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestList_Filters(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &inlineTx{})

	_, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status:    "scheduled",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30T23:59:59Z",
		Search:    " film ",
		Page:      2,
		Limit:     5,
	})
	require.NoError(t, err)

	filter := repo.lastFilter
	require.NotNil(t, filter.Status)
	assert.Equal(t, domain.AppointmentStatusScheduled, *filter.Status)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
	assert.Equal(t, time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC), filter.EndDate.UTC())
	assert.Equal(t, "film", filter.Search)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 5, filter.Limit)

	assert.Len(t, resp.Data, 1)
	assert.Equal(t, models.PageMetaResponse{Total: 1, Page: 2, Limit: 5, TotalPages: 1}, resp.Meta)
}

func TestList_InvalidFilters(t *testing.T) {
	svc := newTestService(newFakeRepo(), &inlineTx{})

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListAppointmentsRequest{StartDate: "June"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAndDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &inlineTx{})

	created, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	resp, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Appointment successfully canceled", resp.Message)

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
