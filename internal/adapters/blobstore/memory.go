package blobstore

import (
	"context"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore retiene los adjuntos en memoria. Sirve para dev y tests donde
// no hay bucket configurado.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	key := "records/" + uuid.NewString() + strings.ToLower(path.Ext(filename))

	s.mu.Lock()
	s.blobs[key] = data
	s.mu.Unlock()

	return "memory://" + key, nil
}

// Get expone el blob guardado para aserciones en tests.
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[strings.TrimPrefix(key, "memory://")]
	return data, ok
}
