package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarohi-store/storefront/internal/models"
)

type memorySnapshots struct {
	mu   sync.Mutex
	data map[string][]models.CartLine
}

func newMemorySnapshots() *memorySnapshots {
	return &memorySnapshots{data: make(map[string][]models.CartLine)}
}

func (m *memorySnapshots) Get(_ context.Context, sessionID string) ([]models.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[sessionID], nil
}

func (m *memorySnapshots) Set(_ context.Context, sessionID string, lines []models.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[sessionID] = lines
	return nil
}

func (m *memorySnapshots) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, sessionID)
	return nil
}

func TestManagerReturnsSameStorePerSession(t *testing.T) {
	m := NewManager(nil)
	ctx := context.Background()

	a := m.Get(ctx, "s1")
	b := m.Get(ctx, "s1")
	c := m.Get(ctx, "s2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestManagerPersistsSnapshotsOnChange(t *testing.T) {
	snaps := newMemorySnapshots()
	m := NewManager(snaps)
	ctx := context.Background()

	store := m.Get(ctx, "s1")
	require.NoError(t, store.AddItem(product("p1", 10, nil), 2))

	saved, err := snaps.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, 2, saved[0].Quantity)

	// emptying the cart drops the snapshot
	store.Clear()
	saved, err = snaps.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestManagerRestoresFromSnapshot(t *testing.T) {
	snaps := newMemorySnapshots()
	ctx := context.Background()
	require.NoError(t, snaps.Set(ctx, "s1", []models.CartLine{
		{Product: product("p1", 10, nil), Quantity: 2},
		{Product: product("bad", 10, nil), Quantity: 0}, // corrupt entry must be skipped
	}))

	m := NewManager(snaps)
	store := m.Get(ctx, "s1")

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].Product.ID)
	assert.Equal(t, 2, store.ItemCount())
}
