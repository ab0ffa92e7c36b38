package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/steaphangreene/acidmud-sub001/internal/logging"
)

var log = logging.GetStorageLogger()

// MemoryStore реализует Store в памяти.
// Используется по умолчанию и в тестах.
// ВНИМАНИЕ: Данные теряются при перезапуске сервера!
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore создает новое хранилище в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

// Save сохраняет копию данных.
func (r *MemoryStore) Save(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("пустое имя снимка")
	}

	// Проверяем контекст на отмену
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[name] = append([]byte(nil), data...)
	return nil
}

// Load загружает копию данных.
func (r *MemoryStore) Load(ctx context.Context, name string) ([]byte, bool, error) {
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.data[name]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Delete удаляет снимок.
func (r *MemoryStore) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, name)
	return nil
}

// List возвращает имена снимков.
func (r *MemoryStore) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.data))
	for name := range r.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *MemoryStore) Close() error { return nil }
