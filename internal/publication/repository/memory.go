package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/quickpost/publisher/internal/publication"
)

// MemoryRepo keeps the publication log in process memory. It is the default
// when no MongoDB is configured and is what tests use.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*publication.Publication
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*publication.Publication)}
}

func (m *MemoryRepo) Create(ctx context.Context, p *publication.Publication) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	cp.Files = append([]string(nil), p.Files...)
	m.store[p.ID] = &cp
	return nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*publication.Publication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.store[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) List(ctx context.Context, limit int) ([]*publication.Publication, error) {
	m.mu.RLock()
	out := make([]*publication.Publication, 0, len(m.store))
	for _, p := range m.store {
		cp := *p
		out = append(out, &cp)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
