package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/aarohi-store/storefront/internal/cache"
	"github.com/aarohi-store/storefront/internal/models"
)

// Repository is the catalog storage the service reads from (use an
// interface to allow mocking).
type Repository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// Service fronts the catalog repository with an in-memory cache.
// Singleflight collapses concurrent misses for the same key so a cold cache
// does not stampede the database.
type Service struct {
	repo  Repository
	cache *cache.ProductCache
	sfg   singleflight.Group
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		cache: cache.NewProductCache(),
	}
}

// List returns the full catalog.
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	if products, ok := s.cache.List(); ok {
		return products, nil
	}

	v, err, _ := s.sfg.Do("list", func() (interface{}, error) {
		products, err := s.repo.ListProducts(ctx)
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		s.cache.SetList(products)
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Product), nil
}

// Get returns the product with the given id, or nil when unknown.
func (s *Service) Get(ctx context.Context, id string) (*models.Product, error) {
	if p, ok := s.cache.Get(id); ok {
		return &p, nil
	}

	v, err, _ := s.sfg.Do("product:"+id, func() (interface{}, error) {
		p, err := s.repo.GetProduct(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get product %s: %w", id, err)
		}
		if p != nil {
			s.cache.Set(*p)
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Product), nil
}
