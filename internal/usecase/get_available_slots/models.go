package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TintingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date       time.Time // Дата (время суток игнорируется)
	ServiceIDs []string  // Выбранные услуги, повторы учитываются
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date                 time.Time
	ServiceIDs           []string
	TotalDurationMinutes int
	Slots                []domain.TimeSlot
}
