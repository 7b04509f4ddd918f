package models

import "github.com/m04kA/SMC-TintingService/internal/domain"

// ServiceResponse услуга в списке услуг
type ServiceResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	EstimatedTime int      `json:"estimatedTime"`
	Tags          []string `json:"tags"`
}

// PackageServiceSummary включённая в пакет услуга (краткая форма)
type PackageServiceSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	EstimatedTime int     `json:"estimatedTime"`
}

// PackageResponse пакет в списке пакетов, только включённые услуги
type PackageResponse struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	TotalPrice    float64                 `json:"totalPrice"`
	EstimatedTime int                     `json:"estimatedTime"`
	Tags          []string                `json:"tags"`
	Services      []PackageServiceSummary `json:"services"`
}

// PackageServiceDetails услуга пакета с признаком включения
type PackageServiceDetails struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	EstimatedTime int      `json:"estimatedTime"`
	IsIncluded    bool     `json:"isIncluded"`
	Tags          []string `json:"tags"`
}

// PackageDetailsResponse пакет со всеми услугами, включая опциональные
type PackageDetailsResponse struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	TotalPrice    float64                 `json:"totalPrice"`
	EstimatedTime int                     `json:"estimatedTime"`
	Tags          []string                `json:"tags"`
	Services      []PackageServiceDetails `json:"services"`
}

// DayScheduleResponse рабочие часы дня, пустые строки - выходной
type DayScheduleResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type WeeklyAvailabilityResponse struct {
	Monday    DayScheduleResponse `json:"monday"`
	Tuesday   DayScheduleResponse `json:"tuesday"`
	Wednesday DayScheduleResponse `json:"wednesday"`
	Thursday  DayScheduleResponse `json:"thursday"`
	Friday    DayScheduleResponse `json:"friday"`
	Saturday  DayScheduleResponse `json:"saturday"`
	Sunday    DayScheduleResponse `json:"sunday"`
}

// TechnicianResponse техник с недельным расписанием
type TechnicianResponse struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Specialties  []string                   `json:"specialties"`
	Availability WeeklyAvailabilityResponse `json:"availability"`
}

// Методы конвертации

func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		Price:         s.Price,
		EstimatedTime: s.EstimatedMinutes,
		Tags:          nonNil(s.Tags),
	}
}

func FromDomainTechnician(t *domain.Technician) TechnicianResponse {
	day := func(d domain.DaySchedule) DayScheduleResponse {
		return DayScheduleResponse{Start: d.Start, End: d.End}
	}
	a := t.Availability

	return TechnicianResponse{
		ID:          t.ID,
		Name:        t.Name,
		Specialties: nonNil(t.Specialties),
		Availability: WeeklyAvailabilityResponse{
			Monday:    day(a.Monday),
			Tuesday:   day(a.Tuesday),
			Wednesday: day(a.Wednesday),
			Thursday:  day(a.Thursday),
			Friday:    day(a.Friday),
			Saturday:  day(a.Saturday),
			Sunday:    day(a.Sunday),
		},
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
