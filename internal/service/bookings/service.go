package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BookingHub/internal/domain"
	"github.com/m04kA/BookingHub/internal/infra/events"
	bookingRepo "github.com/m04kA/BookingHub/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/BookingHub/internal/infra/storage/slot"
	"github.com/m04kA/BookingHub/internal/service/bookings/models"
	"github.com/m04kA/BookingHub/pkg/metrics"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	publisher    EventPublisher
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		publisher:    publisher,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, администратор - любые
func (s *Service) GetByID(ctx context.Context, id string, caller models.Caller) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, caller.UserID)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkAccess(booking, caller); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", caller.UserID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования пользователя с фильтром по вкладке
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, tab=%q", req.UserID, req.Tab)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	tab, err := models.ToDomainTab(req.Tab)
	if err != nil {
		s.logger.Warn("GetUserBookings: invalid tab=%q for user=%s", req.Tab, req.UserID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	userID := req.UserID
	list, err := s.bookingRepo.List(ctx, domain.BookingsFilter{UserID: &userID})
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	today := domain.DateOf(s.timeProvider.Now())
	filtered := make([]*domain.Booking, 0, len(list))
	for _, b := range list {
		switch tab {
		case domain.TabActive:
			if !b.IsActive(today) {
				continue
			}
		case domain.TabPast:
			if !b.IsPast(today) {
				continue
			}
		}
		filtered = append(filtered, b)
	}

	s.logger.Info("GetUserBookings: found %d bookings for user=%s", len(filtered), req.UserID)
	return models.FromDomainBookingList(filtered), nil
}

// GetAllBookings возвращает все бронирования (только для администратора)
func (s *Service) GetAllBookings(ctx context.Context, req *models.GetAllBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetAllBookings: user=%s, status=%v", req.Caller.UserID, req.Status)

	if !req.Caller.IsAdmin {
		s.logger.Warn("GetAllBookings: user=%s is not an admin", req.Caller.UserID)
		return nil, ErrAccessDenied
	}

	var filter domain.BookingsFilter
	if req.Status != nil && *req.Status != "" {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetAllBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	list, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllBookings: found %d bookings", len(list))
	return models.FromDomainBookingList(list), nil
}

// Cancel отменяет бронирование и освобождает слот
// Повторная отмена уже отменённого бронирования ничего не меняет
func (s *Service) Cancel(ctx context.Context, id string, caller models.Caller) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", id, caller.UserID)

	now := s.timeProvider.Now()
	var (
		booking   *domain.Booking
		cancelled bool
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование (в транзакции - с блокировкой строки)
		b, err := s.getBooking(txCtx, id)
		if err != nil {
			return err
		}

		// 2. Проверяем права доступа
		if err := checkAccess(b, caller); err != nil {
			s.logger.Warn("Cancel: access denied for user=%s to booking id=%s", caller.UserID, id)
			return err
		}

		// 3. Проверяем статус
		if b.IsCancelled() {
			s.logger.Info("Cancel: booking id=%s is already cancelled", id)
			booking = b
			return nil
		}
		if !b.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%s has status %s", id, b.Status)
			return ErrCannotCancel
		}

		// 4. Отменяем бронирование
		if err := s.bookingRepo.Cancel(txCtx, id, now); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: failed to cancel booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// 5. Возвращаем слот в продажу
		key := domain.SlotKey{ServiceID: b.ServiceID, Date: b.Date, StartTime: b.StartTime}
		if err := s.slotRepo.Release(txCtx, key); err != nil {
			if !errors.Is(err, slotRepo.ErrSlotNotFound) {
				s.logger.Error("Cancel: failed to release slot %s: %v", key.ID(), err)
				return fmt.Errorf("%w: Cancel - release slot: %v", ErrInternal, err)
			}
			s.logger.Warn("Cancel: slot %s for booking id=%s no longer exists", key.ID(), id)
		}

		b.Status = domain.StatusCancelled
		b.CancelledAt = &now
		b.UpdatedAt = now
		booking = b
		cancelled = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cancelled {
		s.logger.Info("Cancel: booking id=%s cancelled", id)
		s.metrics.IncBookingEvent(metrics.BookingEventCancelled)

		if err := s.publisher.Publish(ctx, events.NewBookingEvent(events.TypeBookingCancelled, booking, now)); err != nil {
			s.logger.Warn("Cancel: failed to publish event for booking id=%s: %v", id, err)
		}
	}

	return models.FromDomainBooking(booking), nil
}

func (s *Service) getBooking(ctx context.Context, id string) (*domain.Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// checkAccess владелец или администратор
func checkAccess(b *domain.Booking, caller models.Caller) error {
	if caller.IsAdmin || (caller.UserID != "" && b.UserID == caller.UserID) {
		return nil
	}
	return ErrAccessDenied
}
