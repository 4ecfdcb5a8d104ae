package add_time_slot

import (
	"context"

	"github.com/m04kA/BookingHub/internal/domain"
)

// SlotRepository интерфейс хранилища слотов
type SlotRepository interface {
	// Create добавляет слот, ключ (услуга, дата, время) уникален
	Create(ctx context.Context, slot *domain.TimeSlot) error
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
