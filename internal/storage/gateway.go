// Package storage implements the persistence gateway: a durable
// key-value store of opaque serialized snapshots. Writes are always
// full-value overwrites.
package storage

import (
	"context"
	"fmt"
)

// Logical snapshot keys.
const (
	KeyEntries     = "entries"
	KeyMonthlyData = "monthlyData"
	KeyDefaultRate = "defaultRate"
	KeyLanguage    = "language"
	KeyTheme       = "theme"
)

// Gateway is the persistence port the ledgers depend on.
type Gateway interface {
	// Load returns the snapshot stored under key, or ok=false if absent.
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Save overwrites the snapshot stored under key.
	Save(ctx context.Context, key string, value []byte) error
}

// Open selects a gateway backend by name. The cleanup function closes
// any underlying resources and is safe to call once.
func Open(backend, dbPath string) (Gateway, func() error, error) {
	switch backend {
	case "sqlite":
		gw, err := NewSQLiteGateway(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite gateway: %w", err)
		}
		return gw, gw.Close, nil
	case "memory":
		return NewMemoryGateway(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage backend: %s", backend)
	}
}
