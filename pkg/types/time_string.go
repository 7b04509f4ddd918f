package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerDay  = 24 * 60
	timeLayoutHHMM = "%02d:%02d"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени (ожидается HH:MM)
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, если результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString время суток с точностью до минуты ("10:00")
// Хранится как количество минут от полуночи, допустимый диапазон 00:00..24:00
// (24:00 появляется только как результат AddMinutes и обозначает конец суток)
type TimeString struct {
	minutes int
}

// NewTimeString создает TimeString из часов и минут time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute()}
}

// NewTimeStringFromHM создает TimeString из часов и минут
func NewTimeStringFromHM(hour, minute int) (TimeString, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeString{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeString, hour, minute)
	}
	return TimeString{minutes: hour*60 + minute}, nil
}

// NewTimeStringFromString парсит строку формата HH:MM (допускается HH:MM:SS, секунды отбрасываются)
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hour, err := parseTwoDigits(parts[0])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minute, err := parseTwoDigits(parts[1])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if len(parts) == 3 {
		if sec, err := parseTwoDigits(parts[2]); err != nil || sec > 59 {
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	return NewTimeStringFromHM(hour, minute)
}

func parseTwoDigits(s string) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, ErrInvalidTimeString
	}
	return strconv.Atoi(s)
}

// Hour возвращает час
func (t TimeString) Hour() int {
	return t.minutes / 60
}

// Minute возвращает минуты
func (t TimeString) Minute() int {
	return t.minutes % 60
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() int {
	return t.minutes
}

// String возвращает время в формате HH:MM
func (t TimeString) String() string {
	return fmt.Sprintf(timeLayoutHHMM, t.Hour(), t.Minute())
}

// IsBefore проверяет, что t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter проверяет, что t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// AddMinutes прибавляет минуты
// Результат должен оставаться в пределах 00:00..24:00
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	result := t.minutes + minutes
	if result < 0 || result > minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %s%+d min", ErrTimeOutOfRange, t, minutes)
	}
	return TimeString{minutes: result}, nil
}

// On возвращает момент времени: дата date в указанной локации с часами и минутами t
// Секунды и наносекунды обнуляются
func (t TimeString) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
}
