package models

import (
	"time"

	"github.com/m04kA/SMC-TintingService/internal/domain"
)

// Request модели

// VehicleDetails автомобиль в запросе
type VehicleDetails struct {
	Year          string `json:"year" validate:"required"`
	Make          string `json:"make" validate:"required"`
	Model         string `json:"model" validate:"required"`
	VehicleType   string `json:"vehicleType" validate:"required"`
	IsCustomEntry bool   `json:"isCustomEntry"`
}

func (v VehicleDetails) ToDomain() domain.VehicleDetails {
	return domain.VehicleDetails{
		Year:          v.Year,
		Make:          v.Make,
		Model:         v.Model,
		VehicleType:   v.VehicleType,
		IsCustomEntry: v.IsCustomEntry,
	}
}

// AppointmentService пакет услуг в запросе
type AppointmentService struct {
	PackageID     string   `json:"packageId" validate:"required"`
	ServiceIDs    []string `json:"serviceIds"`
	EstimatedTime int      `json:"estimatedTime" validate:"min=0"`
	TechnicianID  string   `json:"technicianId" validate:"required"`
	StartDate     string   `json:"startDate" validate:"required,date"`
	StartTime     string   `json:"startTime" validate:"required,hhmm"`
}

func (s AppointmentService) ToDomain() domain.AppointmentService {
	ids := s.ServiceIDs
	if ids == nil {
		ids = []string{}
	}
	return domain.AppointmentService{
		PackageID:        s.PackageID,
		ServiceIDs:       ids,
		EstimatedMinutes: s.EstimatedTime,
		TechnicianID:     s.TechnicianID,
		StartDate:        s.StartDate,
		StartTime:        s.StartTime,
	}
}

// CreateAppointmentRequest запрос на создание записи
// StartDate и EndDate принимают RFC3339 или YYYY-MM-DD
type CreateAppointmentRequest struct {
	ContactID      int64                `json:"contactId" validate:"required,gt=0"`
	VehicleDetails VehicleDetails       `json:"vehicleDetails" validate:"required"`
	Services       []AppointmentService `json:"services" validate:"required,min=1,dive"`
	StartDate      string               `json:"startDate" validate:"required"`
	EndDate        *string              `json:"endDate,omitempty"`
	Notes          *string              `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdateAppointmentRequest частичное обновление: nil поля не меняются
type UpdateAppointmentRequest struct {
	ContactID      *int64                `json:"contactId,omitempty" validate:"omitempty,gt=0"`
	VehicleDetails *VehicleDetails       `json:"vehicleDetails,omitempty"`
	Services       *[]AppointmentService `json:"services,omitempty" validate:"omitempty,min=1,dive"`
	Status         *string               `json:"status,omitempty" validate:"omitempty,oneof=scheduled in-progress completed canceled"`
	StartDate      *string               `json:"startDate,omitempty"`
	EndDate        *string               `json:"endDate,omitempty"`
	Notes          *string               `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ListAppointmentsRequest запрос страницы записей, пустые строки - фильтр не задан
type ListAppointmentsRequest struct {
	Status    string
	StartDate string
	EndDate   string
	Search    string
	Page      int
	Limit     int
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID             int64                       `json:"id"`
	ContactID      int64                       `json:"contactId"`
	VehicleDetails domain.VehicleDetails       `json:"vehicleDetails"`
	Services       []domain.AppointmentService `json:"services"`
	Status         string                      `json:"status"`
	StartDate      time.Time                   `json:"startDate"`
	EndDate        *time.Time                  `json:"endDate,omitempty"`
	Notes          *string                     `json:"notes,omitempty"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}

// PageMetaResponse метаданные страницы
type PageMetaResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// AppointmentListResponse страница записей
type AppointmentListResponse struct {
	Data []AppointmentResponse `json:"data"`
	Meta PageMetaResponse      `json:"meta"`
}

// MessageResponse ответ с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	services := a.Services
	if services == nil {
		services = []domain.AppointmentService{}
	}

	return &AppointmentResponse{
		ID:             a.ID,
		ContactID:      a.ContactID,
		VehicleDetails: a.Vehicle,
		Services:       services,
		Status:         string(a.Status),
		StartDate:      a.StartDate,
		EndDate:        a.EndDate,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// FromDomainPageMeta конвертирует метаданные страницы
func FromDomainPageMeta(m domain.PageMeta) PageMetaResponse {
	return PageMetaResponse{
		Total:      m.Total,
		Page:       m.Page,
		Limit:      m.Limit,
		TotalPages: m.TotalPages,
	}
}
