package middleware

import (
	"context"

	authModels "github.com/m04kA/BookingHub/internal/service/auth/models"
)

// Authenticator проверяет токен доступа
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*authModels.Identity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
