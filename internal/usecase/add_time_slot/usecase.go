package add_time_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BookingHub/internal/domain"
	serviceRepo "github.com/m04kA/BookingHub/internal/infra/storage/service"
	slotRepo "github.com/m04kA/BookingHub/internal/infra/storage/slot"
)

// UseCase use case для добавления слота администратором
type UseCase struct {
	slotRepo    SlotRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, serviceRepo ServiceRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute добавляет свободный слот для услуги
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	date, startTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("AddTimeSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование услуги
	if _, err := uc.serviceRepo.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("AddTimeSlot: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("AddTimeSlot: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Добавляем слот
	slot := domain.NewTimeSlot(req.ServiceID, date, startTime)
	if err := uc.slotRepo.Create(ctx, slot); err != nil {
		if errors.Is(err, slotRepo.ErrSlotAlreadyExists) {
			uc.logger.Warn("AddTimeSlot: slot %s already exists", slot.ID)
			return nil, ErrSlotAlreadyExists
		}
		uc.logger.Error("AddTimeSlot: failed to create slot %s: %v", slot.ID, err)
		return nil, fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
	}

	uc.logger.Info("AddTimeSlot: created slot %s", slot.ID)

	return &Response{
		ID:        slot.ID,
		ServiceID: slot.ServiceID,
		Date:      slot.Date,
		StartTime: slot.StartTime,
		Available: slot.Available,
	}, nil
}
