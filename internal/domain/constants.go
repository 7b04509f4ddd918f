package domain

// Бизнес-окно, в котором генерируются слоты записи
const (
	BusinessDayStartHour = 8  // 08:00
	BusinessDayEndHour   = 17 // 17:00, последний слот начинается в 16:30
	SlotStepMinutes      = 30
)

// AvailabilityWindowMinutes длительность окна доступности техника
const AvailabilityWindowMinutes = 60

// MaxAvailabilityRangeDays максимальный диапазон дат в запросе доступности
const MaxAvailabilityRangeDays = 366

// Пагинация списков
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Ограничения на входные данные
const (
	MaxNameLength  = 200
	MaxNotesLength = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AppointmentStatuses список допустимых статусов записи
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusInProgress,
	AppointmentStatusCompleted,
	AppointmentStatusCanceled,
}
