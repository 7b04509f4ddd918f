package get_technician_availability

import (
	"iter"
	"time"

	"github.com/m04kA/SMC-TintingService/internal/domain"
	"github.com/m04kA/SMC-TintingService/pkg/types"
)

// Windows перечисляет часовые окна доступности техника с from по to включительно
// Порядок: по дням, внутри дня по времени. from после to - пустая последовательность.
// precise = false: минуты в расписании отбрасываются (08:30-12:15 даёт окна 08:00..11:00).
// precise = true: окна идут от точного начала смены и должны полностью помещаться до её конца
func Windows(tech *domain.Technician, from, to time.Time, precise bool) iter.Seq[domain.AvailabilityWindow] {
	return func(yield func(domain.AvailabilityWindow) bool) {
		for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
			for start, end := range dayWindows(tech.Availability.ForDay(day.Weekday()), precise) {
				w := domain.AvailabilityWindow{
					Date:           day,
					StartTime:      start,
					EndTime:        end,
					TechnicianID:   tech.ID,
					TechnicianName: tech.Name,
				}
				if !yield(w) {
					return
				}
			}
		}
	}
}

// dayWindows окна одного рабочего дня; выходной или нечитаемое расписание не дают окон
func dayWindows(schedule domain.DaySchedule, precise bool) iter.Seq2[types.TimeString, types.TimeString] {
	return func(yield func(types.TimeString, types.TimeString) bool) {
		if !schedule.IsWorking() {
			return
		}

		shiftStart, err := types.NewTimeStringFromString(schedule.Start)
		if err != nil {
			return
		}
		shiftEnd, err := types.NewTimeStringFromString(schedule.End)
		if err != nil {
			return
		}

		if !precise {
			for hour := shiftStart.Hour(); hour < shiftEnd.Hour(); hour++ {
				start, _ := types.NewTimeStringFromHM(hour, 0)
				end, err := start.AddMinutes(domain.AvailabilityWindowMinutes)
				if err != nil {
					return
				}
				if !yield(start, end) {
					return
				}
			}
			return
		}

		for start := shiftStart; ; {
			end, err := start.AddMinutes(domain.AvailabilityWindowMinutes)
			if err != nil || end.IsAfter(shiftEnd) {
				return
			}
			if !yield(start, end) {
				return
			}
			start = end
		}
	}
}
