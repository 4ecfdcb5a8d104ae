package user

import (
	"context"
	"sync"

	"github.com/m04kA/BookingHub/internal/domain"
)

// MemoryRepository хранилище пользователей в памяти процесса
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

// NewMemoryRepository создает пустое хранилище пользователей
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

// Create регистрирует пользователя
func (r *MemoryRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Email = normalizeEmail(user.Email)
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, ErrEmailTaken
	}

	stored := *user
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = &stored

	return user, nil
}

// GetByID получает пользователя по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	c := *user
	return &c, nil
}

// GetByEmail получает пользователя по email без учета регистра
func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}

	c := *user
	return &c, nil
}
