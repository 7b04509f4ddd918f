package calculate_end_time

import (
	calculateEndTime "github.com/m04kA/SMC-TintingService/internal/usecase/calculate_end_time"
)

// isoMillis формат меток времени в ответе: UTC с миллисекундами
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// EndTimeResponse HTTP response model
type EndTimeResponse struct {
	StartDateTime   string `json:"startDateTime"`
	EndDateTime     string `json:"endDateTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculateEndTime.Response) *EndTimeResponse {
	return &EndTimeResponse{
		StartDateTime:   resp.StartDateTime.UTC().Format(isoMillis),
		EndDateTime:     resp.EndDateTime.UTC().Format(isoMillis),
		DurationMinutes: resp.DurationMinutes,
	}
}
