package calculate_end_time

import "errors"

var (
	// ErrInvalidTimeInput возвращается, если дату или время начала не удалось разобрать
	ErrInvalidTimeInput = errors.New("invalid start date or time")

	// ErrUnknownService возвращается в строгом режиме для неизвестных ID услуг
	ErrUnknownService = errors.New("unknown service id")
)
