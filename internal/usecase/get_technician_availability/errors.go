package get_technician_availability

import "errors"

var (
	// ErrTechnicianNotFound возвращается, когда техник не найден
	ErrTechnicianNotFound = errors.New("technician not found")

	// ErrInvalidTimeInput возвращается, если даты не удалось разобрать
	ErrInvalidTimeInput = errors.New("invalid start or end date")

	// ErrRangeTooLarge возвращается, если диапазон дат превышает допустимый
	ErrRangeTooLarge = errors.New("date range is too large")
)
