package domain

import "time"

// DaySchedule рабочие часы техника в конкретный день недели ("08:00" - "16:00")
// Пустые Start/End означают выходной
type DaySchedule struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// IsWorking возвращает true, если в этот день заданы и начало, и конец работы
func (d DaySchedule) IsWorking() bool {
	return d.Start != "" && d.End != ""
}

// WeeklyAvailability недельное расписание техника
type WeeklyAvailability struct {
	Sunday    DaySchedule `toml:"sunday"`
	Monday    DaySchedule `toml:"monday"`
	Tuesday   DaySchedule `toml:"tuesday"`
	Wednesday DaySchedule `toml:"wednesday"`
	Thursday  DaySchedule `toml:"thursday"`
	Friday    DaySchedule `toml:"friday"`
	Saturday  DaySchedule `toml:"saturday"`
}

// ForDay возвращает расписание на указанный день недели
func (w WeeklyAvailability) ForDay(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Sunday:
		return w.Sunday
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return DaySchedule{}
	}
}

// Technician мастер, выполняющий услуги
type Technician struct {
	ID           string             `toml:"id"`
	Name         string             `toml:"name"`
	Email        string             `toml:"email"`
	Phone        string             `toml:"phone"`
	Specialties  []string           `toml:"specialties"`
	Availability WeeklyAvailability `toml:"availability"`
	IsActive     bool               `toml:"is_active"`
}
