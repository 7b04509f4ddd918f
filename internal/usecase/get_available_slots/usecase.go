package get_available_slots

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/m04kA/SMC-TintingService/internal/domain"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	durations        DurationSource
	conflictChecker  BookingConflictChecker
	strictServiceIDs bool
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// strictServiceIDs - отклонять запросы с неизвестными ID услуг вместо подсчёта их как 0 минут
func NewUseCase(
	durations DurationSource,
	conflictChecker BookingConflictChecker,
	strictServiceIDs bool,
	logger Logger,
) *UseCase {
	if conflictChecker == nil {
		conflictChecker = AlwaysAvailable{}
	}
	return &UseCase{
		durations:        durations,
		conflictChecker:  conflictChecker,
		strictServiceIDs: strictServiceIDs,
		logger:           logger,
	}
}

// TotalDuration суммирует длительность выбранных услуг
func (uc *UseCase) TotalDuration(serviceIDs []string) (int, error) {
	total, unknown := uc.durations.DurationCatalog().Total(serviceIDs)
	if len(unknown) > 0 && uc.strictServiceIDs {
		return 0, fmt.Errorf("%w: %s", ErrUnknownService, strings.Join(unknown, ", "))
	}
	return total, nil
}

// Slots лениво перечисляет свободные слоты; при ошибке проверки конфликтов отдаёт её и останавливается
func (uc *UseCase) Slots(ctx context.Context, req *Request) iter.Seq2[domain.TimeSlot, error] {
	return func(yield func(domain.TimeSlot, error) bool) {
		if err := validateRequest(req); err != nil {
			yield(domain.TimeSlot{}, err)
			return
		}

		total, err := uc.TotalDuration(req.ServiceIDs)
		if err != nil {
			yield(domain.TimeSlot{}, err)
			return
		}

		for slot := range GenerateSlots(req.Date, total) {
			free, err := uc.conflictChecker.IsAvailable(ctx, slot.Date, slot.StartTime, slot.DurationMinutes)
			if err != nil {
				yield(domain.TimeSlot{}, fmt.Errorf("%w: failed to check conflicts for %s: %v", ErrInternal, slot.StartTime, err))
				return
			}
			if !free {
				continue
			}
			if !yield(slot, nil) {
				return
			}
		}
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: date=%s, services=%v", req.Date.Format(domain.DateFormat), req.ServiceIDs)

	total, err := uc.TotalDuration(req.ServiceIDs)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, 18)
	for slot, err := range uc.Slots(ctx, req) {
		if err != nil {
			uc.logger.Error("GetAvailableSlots: %v", err)
			return nil, err
		}
		slots = append(slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots, total duration %d min", len(slots), total)

	return &Response{
		Date:                 dateOnly(req.Date),
		ServiceIDs:           req.ServiceIDs,
		TotalDurationMinutes: total,
		Slots:                slots,
	}, nil
}

func validateRequest(req *Request) error {
	if req == nil || req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
