package complete_past_bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/BookingHub/internal/domain"
	"github.com/m04kA/BookingHub/internal/infra/events"
	"github.com/m04kA/BookingHub/pkg/metrics"
	"github.com/m04kA/BookingHub/pkg/ptr"
)

// UseCase переводит завершившиеся подтвержденные бронирования в статус completed
type UseCase struct {
	bookingRepo  BookingRepository
	publisher    EventPublisher
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		publisher:    publisher,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет один проход
// Бронирование завершено, если момент окончания (дата + конец слота) не позже текущего
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	var completed []*domain.Booking

	// 2. В транзакции выбираем подтвержденные бронирования по сегодняшний день и закрываем прошедшие
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		completed = completed[:0]

		candidates, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			Status: ptr.Ptr(domain.StatusConfirmed),
			DateTo: ptr.Ptr(now),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		for _, b := range candidates {
			if b.EndsAt(now.Location()).After(now) {
				continue
			}

			if err := uc.bookingRepo.UpdateStatus(txCtx, b.ID, domain.StatusCompleted, now); err != nil {
				return fmt.Errorf("%w: failed to complete booking id=%s: %v", ErrInternal, b.ID, err)
			}

			b.Status = domain.StatusCompleted
			b.UpdatedAt = now
			completed = append(completed, b)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("CompletePastBookings: %v", err)
		return nil, err
	}

	// 3. Публикуем события
	resp := &Response{CompletedIDs: make([]string, 0, len(completed))}
	for _, b := range completed {
		resp.CompletedIDs = append(resp.CompletedIDs, b.ID)
		uc.metrics.IncBookingEvent(metrics.BookingEventCompleted)

		if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.TypeBookingCompleted, b, now)); err != nil {
			uc.logger.Warn("CompletePastBookings: failed to publish event for booking id=%s: %v", b.ID, err)
		}
	}

	if len(completed) > 0 {
		uc.logger.Info("CompletePastBookings: completed %d bookings", len(completed))
	}

	return resp, nil
}
