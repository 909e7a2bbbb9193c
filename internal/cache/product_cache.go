package cache

import (
	"sync"

	"github.com/aarohi-store/storefront/internal/models"
)

// ProductCache is a small in-memory read cache for the catalog. The catalog
// is effectively immutable at runtime, so there is no TTL or invalidation.
type ProductCache struct {
	mu     sync.RWMutex
	byID   map[string]models.Product
	list   []models.Product
	loaded bool
}

func NewProductCache() *ProductCache {
	return &ProductCache{
		byID: make(map[string]models.Product),
	}
}

func (c *ProductCache) Get(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	return p, ok
}

func (c *ProductCache) Set(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID[p.ID] = p
}

// List returns the cached catalog listing, if one has been stored.
func (c *ProductCache) List() ([]models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, false
	}
	return c.list, true
}

// SetList stores the catalog listing and indexes every product by id.
func (c *ProductCache) SetList(products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = products
	c.loaded = true
	for _, p := range products {
		c.byID[p.ID] = p
	}
}
