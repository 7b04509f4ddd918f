package calculate_end_time

import "time"

// Request модель запроса на расчёт времени окончания
type Request struct {
	StartDate  string   // "2006-01-02" или RFC3339 (берётся календарная дата)
	StartTime  string   // "HH:MM"
	ServiceIDs []string // Повторы учитываются
}

// Response модель ответа
type Response struct {
	StartDateTime   time.Time
	EndDateTime     time.Time
	DurationMinutes int
}
