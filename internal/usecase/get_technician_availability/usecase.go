package get_technician_availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TintingService/internal/domain"
)

// UseCase разворачивает недельное расписание техника в часовые окна на диапазон дат
type UseCase struct {
	technicians TechnicianDirectory
	precise     bool
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// precise - учитывать минуты в расписании (см. Windows)
func NewUseCase(technicians TechnicianDirectory, precise bool, logger Logger) *UseCase {
	return &UseCase{
		technicians: technicians,
		precise:     precise,
		logger:      logger,
	}
}

// Execute выполняет use case
// Даты трактуются как календарные (UTC), чтобы день недели не зависел от зоны сервера
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	tech, ok := uc.technicians.Technician(req.TechnicianID)
	if !ok {
		uc.logger.Warn("GetTechnicianAvailability: technician id=%s not found", req.TechnicianID)
		return nil, ErrTechnicianNotFound
	}

	from, err := parseDate(req.StartDate)
	if err != nil {
		uc.logger.Warn("GetTechnicianAvailability: %v", err)
		return nil, err
	}
	to, err := parseDate(req.EndDate)
	if err != nil {
		uc.logger.Warn("GetTechnicianAvailability: %v", err)
		return nil, err
	}

	if days := int(to.Sub(from).Hours() / 24); days >= domain.MaxAvailabilityRangeDays {
		uc.logger.Warn("GetTechnicianAvailability: range of %d days requested", days+1)
		return nil, fmt.Errorf("%w: at most %d days", ErrRangeTooLarge, domain.MaxAvailabilityRangeDays)
	}

	windows := make([]domain.AvailabilityWindow, 0)
	for w := range Windows(tech, from, to, uc.precise) {
		windows = append(windows, w)
	}

	uc.logger.Info("GetTechnicianAvailability: technician=%s, %s..%s, %d windows",
		tech.ID, from.Format(domain.DateFormat), to.Format(domain.DateFormat), len(windows))

	return &Response{
		TechnicianID:   tech.ID,
		TechnicianName: tech.Name,
		StartDate:      from,
		EndDate:        to,
		Windows:        windows,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(domain.DateFormat, s); err == nil {
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := ts.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeInput, s)
}
