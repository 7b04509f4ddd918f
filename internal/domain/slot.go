package domain

import (
	"time"

	"github.com/m04kA/SMC-TintingService/pkg/types"
)

// TimeSlot кандидат на время начала записи
type TimeSlot struct {
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int // суммарная длительность выбранных услуг
}

// AvailabilityWindow часовое окно, в которое техник формально свободен
type AvailabilityWindow struct {
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	TechnicianID   string
	TechnicianName string
}
