package cart

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aarohi-store/storefront/internal/models"
)

// SnapshotCache persists cart snapshots across process restarts. Get returns
// (nil, nil) when no snapshot exists. The cache is best-effort: losing a
// snapshot degrades to an empty cart, never to an error the shopper sees.
type SnapshotCache interface {
	Get(ctx context.Context, sessionID string) ([]models.CartLine, error)
	Set(ctx context.Context, sessionID string, lines []models.CartLine) error
	Delete(ctx context.Context, sessionID string) error
}

// Manager maps session ids to their cart Store, creating empty carts lazily
// and restoring from the snapshot cache when the in-memory entry is gone.
// Persistence rides on the Store's own observer mechanism.
type Manager struct {
	mu        sync.Mutex
	carts     map[string]*Store
	snapshots SnapshotCache // nil disables persistence
}

func NewManager(snapshots SnapshotCache) *Manager {
	return &Manager{
		carts:     make(map[string]*Store),
		snapshots: snapshots,
	}
}

// Get returns the cart for the session, restoring or creating it as needed.
func (m *Manager) Get(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.carts[sessionID]; ok {
		return store
	}

	store := NewStore()
	if m.snapshots != nil {
		lines, err := m.snapshots.Get(ctx, sessionID)
		if err != nil {
			slog.WarnContext(ctx, "cart snapshot read failed", "session_id", sessionID, "error", err)
		} else if len(lines) > 0 {
			store.restore(lines)
		}
		store.Subscribe(m.persister(sessionID, store))
	}
	m.carts[sessionID] = store
	return store
}

// persister writes the cart back to the snapshot cache on every change.
// Failures are logged and swallowed: the in-memory cart stays authoritative.
func (m *Manager) persister(sessionID string, store *Store) Observer {
	return func(ev Event) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		var err error
		if ev.ItemCount == 0 {
			err = m.snapshots.Delete(ctx, sessionID)
		} else {
			err = m.snapshots.Set(ctx, sessionID, store.Lines())
		}
		if err != nil {
			slog.Warn("cart snapshot write failed", "session_id", sessionID, "error", err)
		}
	}
}
