package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookingHub/internal/domain"
)

// Типы событий бронирования
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
	TypeBookingCompleted = "booking.completed"
)

// Event доменное событие по бронированию
type Event struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	BookingID   string    `json:"bookingId"`
	UserID      string    `json:"userId"`
	ServiceID   string    `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// NewBookingEvent создает событие по состоянию бронирования
func NewBookingEvent(eventType string, b *domain.Booking, at time.Time) Event {
	return Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		BookingID:   b.ID,
		UserID:      b.UserID,
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		Date:        domain.FormatDate(b.Date),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Status:      string(b.Status),
		OccurredAt:  at.UTC(),
	}
}

// Publisher публикует доменные события
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher отбрасывает события
type NoopPublisher struct{}

func NewNoop() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
