package get_technician_availability

import (
	"time"

	"github.com/m04kA/SMC-TintingService/internal/domain"
)

// Request модель запроса доступности техника
type Request struct {
	TechnicianID string
	StartDate    string // "2006-01-02", включительно
	EndDate      string // "2006-01-02", включительно
}

// Response модель ответа
type Response struct {
	TechnicianID   string
	TechnicianName string
	StartDate      time.Time
	EndDate        time.Time
	Windows        []domain.AvailabilityWindow
}
