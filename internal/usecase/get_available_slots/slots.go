package get_available_slots

import (
	"iter"
	"time"

	"github.com/m04kA/SMC-TintingService/internal/domain"
	"github.com/m04kA/SMC-TintingService/pkg/types"
)

// GenerateSlots перечисляет кандидатов на начало записи в рабочем окне 08:00-17:00 с шагом 30 минут
// Каждый слот несёт суммарную длительность услуг; помещается ли запись до конца дня, не проверяется.
// Последовательность ленивая и может обходиться повторно
func GenerateSlots(date time.Time, durationMinutes int) iter.Seq[domain.TimeSlot] {
	day := dateOnly(date)

	return func(yield func(domain.TimeSlot) bool) {
		for start := range candidateStarts() {
			slot := domain.TimeSlot{
				Date:            day,
				StartTime:       start,
				DurationMinutes: durationMinutes,
			}
			if !yield(slot) {
				return
			}
		}
	}
}

func candidateStarts() iter.Seq[types.TimeString] {
	return func(yield func(types.TimeString) bool) {
		for hour := domain.BusinessDayStartHour; hour < domain.BusinessDayEndHour; hour++ {
			for minute := 0; minute < 60; minute += domain.SlotStepMinutes {
				start, err := types.NewTimeStringFromHM(hour, minute)
				if err != nil {
					return
				}
				if !yield(start) {
					return
				}
			}
		}
	}
}

// dateOnly обнуляет время, сохраняя зону даты
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
