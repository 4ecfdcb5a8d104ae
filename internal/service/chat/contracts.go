package chat

import (
	"context"

	"github.com/m04kA/BookingHub/internal/domain"
	"github.com/m04kA/BookingHub/internal/integrations/openai"
)

// Completer интерфейс клиента языковой модели
type Completer interface {
	Complete(ctx context.Context, messages []openai.Message) (string, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	List(ctx context.Context, filter domain.ServiceFilter) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
