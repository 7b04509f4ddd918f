package get_technician_availability

import (
	"github.com/m04kA/SMC-TintingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-TintingService/internal/usecase/get_technician_availability"
)

// AvailabilityWindow HTTP модель окна доступности
type AvailabilityWindow struct {
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	TechnicianID   string `json:"technicianId"`
	TechnicianName string `json:"technicianName"`
}

// FromUseCaseResponse конвертирует ответ use case в список окон
func FromUseCaseResponse(resp *getAvailability.Response) []AvailabilityWindow {
	windows := make([]AvailabilityWindow, len(resp.Windows))
	for i, w := range resp.Windows {
		windows[i] = AvailabilityWindow{
			Date:           w.Date.Format(domain.DateFormat),
			StartTime:      w.StartTime.String(),
			EndTime:        w.EndTime.String(),
			TechnicianID:   w.TechnicianID,
			TechnicianName: w.TechnicianName,
		}
	}
	return windows
}
