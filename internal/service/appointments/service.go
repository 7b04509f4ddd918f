package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TintingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-TintingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-TintingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-TintingService/internal/usecase/calculate_end_time"
	"github.com/m04kA/SMC-TintingService/pkg/validation"
)

// Service сервис для работы с записями клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	endTime         EndTimeCalculator
	txManager       TransactionManager
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
// location - зона для дат без смещения (nil - time.Local)
func NewService(
	appointmentRepo AppointmentRepository,
	endTime EndTimeCalculator,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		endTime:         endTime,
		txManager:       txManager,
		location:        location,
		logger:          logger,
	}
}

// List возвращает страницу записей
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter, err := s.buildFilter(req)
	if err != nil {
		s.logger.Warn("List: %v", err)
		return nil, err
	}

	s.logger.Info("List: fetching appointments page=%d, limit=%d, status=%q, search=%q",
		filter.Page, filter.Limit, req.Status, req.Search)

	appointments, total, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.AppointmentListResponse{
		Data: make([]models.AppointmentResponse, len(appointments)),
		Meta: models.FromDomainPageMeta(domain.NewPageMeta(total, filter.Page, filter.Limit)),
	}
	for i, a := range appointments {
		resp.Data[i] = *models.FromDomainAppointment(a)
	}

	s.logger.Info("List: fetched %d of %d appointments", len(appointments), total)
	return resp, nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	a, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(a), nil
}

// Create создает запись со статусом scheduled
// Для каждого пакета рассчитывается ожидаемое окончание, endDate по умолчанию - самое позднее из них
func (s *Service) Create(ctx context.Context, req *models.CreateAppointmentRequest) (*models.AppointmentResponse, error) {
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	startDate, err := s.parseTimestamp("startDate", req.StartDate)
	if err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, err
	}

	services, latestEnd, err := s.buildServices(ctx, req.Services)
	if err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, err
	}

	endDate := latestEnd
	if req.EndDate != nil {
		parsed, err := s.parseTimestamp("endDate", *req.EndDate)
		if err != nil {
			s.logger.Warn("Create: %v", err)
			return nil, err
		}
		endDate = &parsed
	}
	if endDate != nil && endDate.Before(startDate) {
		s.logger.Warn("Create: endDate %s is before startDate %s", endDate.Format(time.RFC3339), startDate.Format(time.RFC3339))
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	a := &domain.Appointment{
		ContactID: req.ContactID,
		Vehicle:   req.VehicleDetails.ToDomain(),
		Services:  services,
		Status:    domain.AppointmentStatusScheduled,
		StartDate: startDate,
		EndDate:   endDate,
		Notes:     req.Notes,
	}

	created, err := s.appointmentRepo.Create(ctx, a)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrContactNotFound) {
			s.logger.Warn("Create: contact id=%d not found", req.ContactID)
			return nil, ErrContactNotFound
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created appointment id=%d for contact id=%d, services=%d",
		created.ID, created.ContactID, len(created.Services))
	return models.FromDomainAppointment(created), nil
}

// Update частично обновляет запись
// При замене услуг ожидаемое окончание пересчитывается
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var updated *domain.Appointment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		a, err := s.appointmentRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.apply(ctx, a, req); err != nil {
			return err
		}

		updated, err = s.appointmentRepo.Update(ctx, a)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			s.logger.Warn("Update: appointment id=%d: %v", id, err)
			return nil, err
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Warn("Update: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrContactNotFound):
			s.logger.Warn("Update: contact for appointment id=%d not found", id)
			return nil, ErrContactNotFound
		}
		s.logger.Error("Update: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated appointment id=%d, status=%s", id, updated.Status)
	return models.FromDomainAppointment(updated), nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id int64) (*models.MessageResponse, error) {
	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted appointment id=%d", id)
	return &models.MessageResponse{Message: "Appointment successfully canceled"}, nil
}

// apply переносит заданные поля запроса в запись
func (s *Service) apply(ctx context.Context, a *domain.Appointment, req *models.UpdateAppointmentRequest) error {
	if req.ContactID != nil {
		a.ContactID = *req.ContactID
	}
	if req.VehicleDetails != nil {
		a.Vehicle = req.VehicleDetails.ToDomain()
	}
	if req.Status != nil {
		a.Status = domain.AppointmentStatus(*req.Status)
	}
	if req.StartDate != nil {
		startDate, err := s.parseTimestamp("startDate", *req.StartDate)
		if err != nil {
			return err
		}
		a.StartDate = startDate
	}
	if req.Notes != nil {
		a.Notes = req.Notes
	}

	if req.Services != nil {
		services, latestEnd, err := s.buildServices(ctx, *req.Services)
		if err != nil {
			return err
		}
		a.Services = services
		if req.EndDate == nil && latestEnd != nil {
			a.EndDate = latestEnd
		}
	}
	if req.EndDate != nil {
		endDate, err := s.parseTimestamp("endDate", *req.EndDate)
		if err != nil {
			return err
		}
		a.EndDate = &endDate
	}

	if a.EndDate != nil && a.EndDate.Before(a.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}
	return nil
}

// buildServices конвертирует пакеты и рассчитывает для каждого ожидаемое окончание
// Если длительность по справочнику нулевая, используется estimatedTime клиента
func (s *Service) buildServices(ctx context.Context, items []models.AppointmentService) ([]domain.AppointmentService, *time.Time, error) {
	services := make([]domain.AppointmentService, 0, len(items))
	var latest *time.Time

	for i, item := range items {
		svc := item.ToDomain()

		resp, err := s.endTime.Execute(ctx, &calculate_end_time.Request{
			StartDate:  svc.StartDate,
			StartTime:  svc.StartTime,
			ServiceIDs: svc.ServiceIDs,
		})
		if err != nil {
			if errors.Is(err, calculate_end_time.ErrInvalidTimeInput) || errors.Is(err, calculate_end_time.ErrUnknownService) {
				return nil, nil, fmt.Errorf("%w: services[%d]: %v", ErrInvalidInput, i, err)
			}
			return nil, nil, fmt.Errorf("%w: services[%d]: %v", ErrInternal, i, err)
		}

		end := resp.EndDateTime
		if resp.DurationMinutes == 0 && svc.EstimatedMinutes > 0 {
			end = resp.StartDateTime.Add(time.Duration(svc.EstimatedMinutes) * time.Minute)
		}
		svc.EstimatedEndDate = &end

		if latest == nil || end.After(*latest) {
			latest = &end
		}
		services = append(services, svc)
	}

	return services, latest, nil
}

// buildFilter проверяет параметры списка и собирает фильтр репозитория
func (s *Service) buildFilter(req *models.ListAppointmentsRequest) (domain.AppointmentsFilter, error) {
	page, limit := normalizePage(req.Page, req.Limit)
	filter := domain.AppointmentsFilter{
		Search: strings.TrimSpace(req.Search),
		Page:   page,
		Limit:  limit,
	}

	if req.Status != "" {
		status := domain.AppointmentStatus(req.Status)
		if !status.IsValid() {
			return filter, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
		}
		filter.Status = &status
	}
	if req.StartDate != "" {
		from, err := s.parseTimestamp("startDate", req.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &from
	}
	if req.EndDate != "" {
		to, err := s.parseTimestamp("endDate", req.EndDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &to
	}

	return filter, nil
}

// parseTimestamp принимает RFC3339 метку либо дату "2006-01-02" (полночь в зоне сервиса)
func (s *Service) parseTimestamp(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	if d, err := time.ParseInLocation(domain.DateFormat, value, s.location); err == nil {
		return d, nil
	}
	return time.Time{}, fmt.Errorf("%w: %s %q is not a date", ErrInvalidInput, field, value)
}

// normalizePage подставляет значения по умолчанию и ограничивает размер страницы
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = domain.DefaultPage
	}
	if limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}
	return page, limit
}
