package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/BookingHub/internal/domain"
)

// MemoryRepository хранилище бронирований в памяти процесса
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
}

// NewMemoryRepository создает пустое хранилище бронирований
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

// Create создает новое бронирование
func (r *MemoryRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; ok {
		return nil, ErrBookingAlreadyExists
	}

	r.bookings[booking.ID] = cloneBooking(booking)
	return booking, nil
}

// GetByID получает бронирование по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	return cloneBooking(booking), nil
}

// List получает бронирования по фильтру, сначала новые
func (r *MemoryRepository) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if filter.UserID != nil && b.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.DateTo != nil && b.Date.After(domain.DateOf(*filter.DateTo)) {
			continue
		}
		result = append(result, cloneBooking(b))
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		if result[i].StartTime != result[j].StartTime {
			return result[i].StartTime.IsAfter(result[j].StartTime)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// UpdateStatus обновляет статус бронирования
func (r *MemoryRepository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus, updatedAt time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}

	booking.Status = status
	booking.UpdatedAt = updatedAt
	return nil
}

// Cancel переводит бронирование в статус cancelled
func (r *MemoryRepository) Cancel(_ context.Context, id string, cancelledAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}

	at := cancelledAt
	booking.Status = domain.StatusCancelled
	booking.CancelledAt = &at
	booking.UpdatedAt = cancelledAt
	return nil
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	if b.CancelledAt != nil {
		at := *b.CancelledAt
		c.CancelledAt = &at
	}
	return &c
}
