package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/BookingHub/internal/domain"
)

// SlotRepository интерфейс хранилища слотов
type SlotRepository interface {
	// ListAvailable свободные слоты услуги на дату по возрастанию времени
	ListAvailable(ctx context.Context, serviceID string, date time.Time) ([]*domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
