package slot

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/BookingHub/internal/domain"
)

// MemoryRepository хранилище слотов в памяти процесса
type MemoryRepository struct {
	mu    sync.RWMutex
	slots map[domain.SlotKey]*domain.TimeSlot
}

// NewMemoryRepository создает пустое хранилище слотов
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		slots: make(map[domain.SlotKey]*domain.TimeSlot),
	}
}

// Create добавляет слот; ключ уникален
func (r *MemoryRepository) Create(_ context.Context, slot *domain.TimeSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeKey(slot.Key())
	if _, ok := r.slots[key]; ok {
		return ErrSlotAlreadyExists
	}

	r.slots[key] = cloneSlot(slot)
	return nil
}

// CreateBatch добавляет слоты, существующие ключи пропускаются
func (r *MemoryRepository) CreateBatch(_ context.Context, slots []*domain.TimeSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range slots {
		key := normalizeKey(s.Key())
		if _, ok := r.slots[key]; ok {
			continue
		}
		r.slots[key] = cloneSlot(s)
	}

	return nil
}

// GetByKey получает слот по ключу
func (r *MemoryRepository) GetByKey(_ context.Context, key domain.SlotKey) (*domain.TimeSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.slots[normalizeKey(key)]
	if !ok {
		return nil, ErrSlotNotFound
	}

	return cloneSlot(slot), nil
}

// ListAvailable возвращает свободные слоты услуги на дату, по возрастанию времени
func (r *MemoryRepository) ListAvailable(_ context.Context, serviceID string, date time.Time) ([]*domain.TimeSlot, error) {
	day := domain.DateOf(date)

	r.mu.RLock()
	result := make([]*domain.TimeSlot, 0)
	for _, s := range r.slots {
		if s.ServiceID == serviceID && s.Date.Equal(day) && s.Available {
			result = append(result, cloneSlot(s))
		}
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})

	return result, nil
}

// Reserve атомарно занимает свободный слот
func (r *MemoryRepository) Reserve(_ context.Context, key domain.SlotKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[normalizeKey(key)]
	if !ok {
		return ErrSlotNotFound
	}
	if !slot.Available {
		return ErrSlotNotAvailable
	}

	slot.Available = false
	return nil
}

// Release освобождает слот
func (r *MemoryRepository) Release(_ context.Context, key domain.SlotKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[normalizeKey(key)]
	if !ok {
		return ErrSlotNotFound
	}

	slot.Available = true
	return nil
}

func normalizeKey(key domain.SlotKey) domain.SlotKey {
	key.Date = domain.DateOf(key.Date)
	return key
}

func cloneSlot(s *domain.TimeSlot) *domain.TimeSlot {
	c := *s
	c.Date = domain.DateOf(c.Date)
	return &c
}
