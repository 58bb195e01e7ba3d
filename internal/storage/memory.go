package storage

import (
	"context"
	"sync"
)

// MemoryGateway keeps snapshots in process memory. Used by tests and
// ephemeral runs (DATA_BACKEND=memory).
type MemoryGateway struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{items: make(map[string][]byte)}
}

func (g *MemoryGateway) Load(_ context.Context, key string) ([]byte, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.items[key]
	if !ok {
		return nil, false, nil
	}
	out := append([]byte(nil), v...)
	return out, true, nil
}

func (g *MemoryGateway) Save(_ context.Context, key string, value []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.items[key] = append([]byte(nil), value...)
	return nil
}
