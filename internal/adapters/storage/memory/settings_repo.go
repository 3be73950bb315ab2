package memory

import (
	"context"
	"sync"
)

// SettingsRepo guarda blobs de configuración por clave. Conserva los bytes
// crudos para que el fallback ante JSON corrupto sea observable en dev/tests.
type SettingsRepo struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewSettingsRepo() *SettingsRepo {
	return &SettingsRepo{
		values: make(map[string][]byte),
	}
}

func (r *SettingsRepo) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[key], nil
}

func (r *SettingsRepo) Put(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	r.values[key] = cp
	return nil
}
