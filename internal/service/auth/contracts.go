package auth

import (
	"context"
	"time"

	"github.com/m04kA/BookingHub/internal/domain"
	"github.com/m04kA/BookingHub/internal/service/auth/models"
)

// Provider источник учётных записей
// Ядро бронирования знает только непрозрачный ID пользователя
type Provider interface {
	// Authenticate проверяет email и пароль
	Authenticate(ctx context.Context, email, password string) (*models.Identity, error)
	// Lookup находит пользователя по ID
	Lookup(ctx context.Context, id string) (*models.Identity, error)
	// HasEmail сообщает, занят ли email
	HasEmail(ctx context.Context, email string) (bool, error)
}

// UserRepository интерфейс хранилища зарегистрированных пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Cache хранилище отозванных токенов
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
