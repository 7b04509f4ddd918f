package calculate_end_time

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TintingService/internal/domain"
	"github.com/m04kA/SMC-TintingService/pkg/types"
)

// UseCase расчёт времени окончания записи по времени начала и выбранным услугам
type UseCase struct {
	durations        DurationSource
	location         *time.Location
	strictServiceIDs bool
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// location - зона, в которой интерпретируются дата и время начала (nil - time.Local)
func NewUseCase(durations DurationSource, location *time.Location, strictServiceIDs bool, logger Logger) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		durations:        durations,
		location:         location,
		strictServiceIDs: strictServiceIDs,
		logger:           logger,
	}
}

// Execute выполняет расчёт
// Окончание = начало + сумма длительностей; переход через полночь переносит дату
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	start, err := uc.parseStart(req)
	if err != nil {
		uc.logger.Warn("CalculateEndTime: %v", err)
		return nil, err
	}

	total, unknown := uc.durations.DurationCatalog().Total(req.ServiceIDs)
	if len(unknown) > 0 {
		if uc.strictServiceIDs {
			uc.logger.Warn("CalculateEndTime: unknown services %v", unknown)
			return nil, fmt.Errorf("%w: %s", ErrUnknownService, strings.Join(unknown, ", "))
		}
		uc.logger.Info("CalculateEndTime: unknown services %v counted as 0 min", unknown)
	}

	end := start.Add(time.Duration(total) * time.Minute)

	uc.logger.Info("CalculateEndTime: start=%s, duration=%d min, end=%s",
		start.Format(time.RFC3339), total, end.Format(time.RFC3339))

	return &Response{
		StartDateTime:   start,
		EndDateTime:     end,
		DurationMinutes: total,
	}, nil
}

func (uc *UseCase) parseStart(req *Request) (time.Time, error) {
	if req == nil {
		return time.Time{}, fmt.Errorf("%w: empty request", ErrInvalidTimeInput)
	}

	date, err := ParseDate(req.StartDate, uc.location)
	if err != nil {
		return time.Time{}, err
	}

	clock, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: startTime %q", ErrInvalidTimeInput, req.StartTime)
	}

	return clock.On(date, uc.location), nil
}

// ParseDate разбирает календарную дату "2006-01-02" либо RFC3339 метку в зоне loc
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseInLocation(domain.DateFormat, s, loc); err == nil {
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := ts.In(loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: startDate %q", ErrInvalidTimeInput, s)
}
