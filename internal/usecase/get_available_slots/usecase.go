package get_available_slots

import (
	"context"
	"fmt"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute возвращает свободные слоты услуги на дату
// Для неизвестной услуги возвращается пустой список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем свободные слоты
	slots, err := uc.slotRepo.ListAvailable(ctx, req.ServiceID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots for service=%s date=%s: %v", req.ServiceID, req.Date, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 3. Формируем ответ
	resp := &Response{
		ServiceID: req.ServiceID,
		Date:      date,
		Slots:     make([]Slot, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, Slot{ID: s.ID, StartTime: s.StartTime})
	}

	return resp, nil
}
