package service

import (
	"context"
	"sync"

	"github.com/m04kA/BookingHub/internal/domain"
)

// MemoryRepository каталог услуг в памяти процесса, хранит порядок добавления
type MemoryRepository struct {
	mu       sync.RWMutex
	services []*domain.Service
	byID     map[string]*domain.Service
}

// NewMemoryRepository создает пустой каталог
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID: make(map[string]*domain.Service),
	}
}

// Create добавляет услугу
func (r *MemoryRepository) Create(_ context.Context, service *domain.Service) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[service.ID]; ok {
		return nil, ErrServiceAlreadyExists
	}

	stored := cloneService(service)
	r.services = append(r.services, stored)
	r.byID[stored.ID] = stored

	return cloneService(stored), nil
}

// GetByID получает услугу по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, ok := r.byID[id]
	if !ok {
		return nil, ErrServiceNotFound
	}

	return cloneService(service), nil
}

// List возвращает услуги, подходящие под фильтр
func (r *MemoryRepository) List(_ context.Context, filter domain.ServiceFilter) ([]*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Service, 0, len(r.services))
	for _, s := range r.services {
		if filter.Matches(s) {
			result = append(result, cloneService(s))
		}
	}

	return result, nil
}

// Categories возвращает различные категории в порядке первого появления
func (r *MemoryRepository) Categories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, s := range r.services {
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		categories = append(categories, s.Category)
	}

	return categories, nil
}

func cloneService(s *domain.Service) *domain.Service {
	c := *s
	return &c
}
