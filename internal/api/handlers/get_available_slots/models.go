package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TintingService/internal/api/handlers"
	"github.com/m04kA/SMC-TintingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TintingService/internal/usecase/get_available_slots"
)

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Дата слота возвращается в том виде, в котором пришла в запросе
func FromUseCaseResponse(rawDate string, resp *getAvailableSlots.Response) []AvailableSlot {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Date:            rawDate,
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
		}
	}
	return slots
}

// ToUseCaseRequest создает запрос use case из query параметров
// Принимается YYYY-MM-DD либо RFC3339 (берется календарная дата)
func ToUseCaseRequest(dateStr, serviceIDs string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, dateStr)
		if tsErr != nil {
			return nil, err
		}
		date = ts
	}

	return &getAvailableSlots.Request{
		Date:       date,
		ServiceIDs: handlers.ParseIDList(serviceIDs),
	}, nil
}
