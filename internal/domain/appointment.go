package domain

import (
	"slices"
	"time"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusInProgress AppointmentStatus = "in-progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCanceled   AppointmentStatus = "canceled"
)

// IsValid проверяет, что статус входит в список допустимых
func (s AppointmentStatus) IsValid() bool {
	return slices.Contains(AppointmentStatuses, s)
}

// VehicleDetails автомобиль клиента
type VehicleDetails struct {
	Year          string `json:"year"`
	Make          string `json:"make"`
	Model         string `json:"model"`
	VehicleType   string `json:"vehicleType"`
	IsCustomEntry bool   `json:"isCustomEntry"` // введён вручную, а не выбран из справочника
}

// AppointmentService пакет услуг внутри записи с назначенным техником
// Хранится в JSONB, поэтому размечен json-тегами
type AppointmentService struct {
	PackageID        string     `json:"packageId"`
	ServiceIDs       []string   `json:"serviceIds"`
	EstimatedMinutes int        `json:"estimatedTime"`
	TechnicianID     string     `json:"technicianId"`
	StartDate        string     `json:"startDate"` // YYYY-MM-DD
	StartTime        string     `json:"startTime"` // HH:MM
	EstimatedEndDate *time.Time `json:"estimatedEndDate,omitempty"`
}

// Appointment запись клиента на обслуживание
type Appointment struct {
	ID        int64
	ContactID int64
	Vehicle   VehicleDetails
	Services  []AppointmentService
	Status    AppointmentStatus
	StartDate time.Time
	EndDate   *time.Time
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись не отменена и не завершена
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusInProgress
}

// AppointmentsFilter фильтр списка записей
type AppointmentsFilter struct {
	Status    *AppointmentStatus
	StartDate *time.Time // start_date >= StartDate
	EndDate   *time.Time // end_date <= EndDate
	Search    string     // подстрока заметок
	Page      int
	Limit     int
}
