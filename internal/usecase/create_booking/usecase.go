package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/BookingHub/internal/domain"
	"github.com/m04kA/BookingHub/internal/infra/events"
	"github.com/m04kA/BookingHub/internal/infra/storage"
	bookingRepo "github.com/m04kA/BookingHub/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/BookingHub/internal/infra/storage/service"
	slotRepo "github.com/m04kA/BookingHub/internal/infra/storage/slot"
	"github.com/m04kA/BookingHub/pkg/metrics"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	serviceRepo  ServiceRepository
	publisher    EventPublisher
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	serviceRepo ServiceRepository,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		serviceRepo:  serviceRepo,
		publisher:    publisher,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Резервирование слота и вставка бронирования выполняются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, service=%s, date=%s, time=%s",
		req.UserID, req.ServiceID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	parsed, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Время окончания по длительности услуги (через полночь - на следующие сутки)
	endTime, err := parsed.startTime.AddMinutesWrap(service.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to calculate end time: %v", ErrInternal, err)
	}

	key := domain.SlotKey{ServiceID: service.ID, Date: parsed.date, StartTime: parsed.startTime}
	booking := &domain.Booking{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Date:        parsed.date,
		StartTime:   parsed.startTime,
		EndTime:     endTime,
		Status:      domain.StatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 5. Резервируем слот и сохраняем бронирование в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Атомарно занимаем слот
		if err := uc.slotRepo.Reserve(txCtx, key); err != nil {
			switch {
			case errors.Is(err, slotRepo.ErrSlotNotFound):
				uc.logger.Warn("CreateBooking: slot %s not found", key.ID())
				return ErrSlotNotFound
			case errors.Is(err, slotRepo.ErrSlotNotAvailable):
				uc.logger.Warn("CreateBooking: slot %s is already taken", key.ID())
				uc.metrics.IncSlotConflict()
				return ErrSlotNotAvailable
			default:
				uc.logger.Error("CreateBooking: failed to reserve slot %s: %v", key.ID(), err)
				return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
			}
		}

		// 5.2. Сохраняем бронирование, при ошибке возвращаем слот
		if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			if relErr := uc.slotRepo.Release(txCtx, key); relErr != nil {
				uc.logger.Warn("CreateBooking: failed to release slot %s after failed insert: %v", key.ID(), relErr)
			}
			if errors.Is(err, bookingRepo.ErrSlotAlreadyBooked) {
				uc.logger.Warn("CreateBooking: slot %s already has an active booking", key.ID())
				uc.metrics.IncSlotConflict()
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		// Конкурентная транзакция заняла слот раньше (SERIALIZABLE, SQLSTATE 40001)
		if storage.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serialization conflict on slot %s: %v", key.ID(), err)
			uc.metrics.IncSlotConflict()
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)
	uc.metrics.IncBookingEvent(metrics.BookingEventCreated)

	// 6. Публикуем событие (ошибка публикации не отменяет бронирование)
	if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.TypeBookingCreated, booking, now)); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%s: %v", booking.ID, err)
	}

	return &Response{
		ID:          booking.ID,
		UserID:      booking.UserID,
		ServiceID:   booking.ServiceID,
		Date:        booking.Date,
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Status:      string(booking.Status),
		ServiceName: booking.ServiceName,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}, nil
}
