package txmanager

import (
	"context"
	"sync"
)

// LocalManager менеджер транзакций для хранилища в памяти
// Пишущие операции выполняются по одной под общим мьютексом
// Отката нет: при ошибке fn сама возвращает изменённое состояние
type LocalManager struct {
	mu sync.Mutex
}

// NewLocalManager создает менеджер для in-memory хранилища
func NewLocalManager() *LocalManager {
	return &LocalManager{}
}

type localTxKey struct{}

// Do выполняет fn под мьютексом
func (m *LocalManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(localTxKey{}) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(context.WithValue(ctx, localTxKey{}, true))
}

// DoSerializable в памяти эквивалентен Do
func (m *LocalManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly в памяти эквивалентен Do
func (m *LocalManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
