package domain

import (
	"time"

	"github.com/m04kA/BookingHub/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// IsValid возвращает true для известных статусов
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Booking бронирование услуги пользователем
type Booking struct {
	ID        string
	UserID    string
	ServiceID string
	Date      time.Time // календарный день, полночь UTC
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    BookingStatus

	// Денормализованные данные для истории
	ServiceName string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted returns true if the booking is completed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// IsActive бронирование на сегодня или позже и не отменено
func (b *Booking) IsActive(today time.Time) bool {
	return !b.Date.Before(today) && !b.IsCancelled()
}

// IsPast бронирование в прошлом или отменено
func (b *Booking) IsPast(today time.Time) bool {
	return b.Date.Before(today) || b.IsCancelled()
}

// EndsAt момент окончания бронирования в указанной временной зоне
// Если EndTime не позже StartTime, бронирование заканчивается на следующий день
func (b *Booking) EndsAt(loc *time.Location) time.Time {
	day := time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), 0, 0, 0, 0, loc)
	end := b.EndTime.On(day)
	if !b.EndTime.IsAfter(b.StartTime) {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

// BookingsFilter фильтр для списка бронирований
type BookingsFilter struct {
	UserID *string        // Только бронирования пользователя (опционально)
	Status *BookingStatus // Фильтр по статусу (опционально)
	DateTo *time.Time     // Не позже указанного дня (опционально)
}
