package models

import (
	"errors"
	"time"

	"github.com/m04kA/BookingHub/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTab возвращается при неизвестной вкладке
	ErrInvalidTab = errors.New("invalid bookings tab")
)

// Caller пользователь, от имени которого выполняется операция
type Caller struct {
	UserID  string
	IsAdmin bool
}

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID string
	Tab    string // "", "active" или "past"
}

// GetAllBookingsRequest запрос администратора на получение всех бронирований
type GetAllBookingsRequest struct {
	Caller Caller
	Status *string
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	Status    string `json:"status"`

	// Денормализованные данные
	ServiceName string `json:"serviceName"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		ServiceID:   b.ServiceID,
		Date:        domain.FormatDate(b.Date),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Status:      string(b.Status),
		ServiceName: b.ServiceName,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ToDomainTab конвертирует строку в вкладку личного кабинета
func ToDomainTab(tab string) (domain.BookingsTab, error) {
	t := domain.BookingsTab(tab)
	if !t.IsValid() {
		return "", ErrInvalidTab
	}
	return t, nil
}
