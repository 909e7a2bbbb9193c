package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarohi-store/storefront/internal/models"
)

type countingRepo struct {
	listCalls int32
	getCalls  int32
	products  []models.Product
	err       error
}

func (r *countingRepo) ListProducts(context.Context) ([]models.Product, error) {
	atomic.AddInt32(&r.listCalls, 1)
	return r.products, r.err
}

func (r *countingRepo) GetProduct(_ context.Context, id string) (*models.Product, error) {
	atomic.AddInt32(&r.getCalls, 1)
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func TestListCachesAfterFirstHit(t *testing.T) {
	repo := &countingRepo{products: []models.Product{{ID: "p1", Name: "one", Price: 10, InStock: true}}}
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.List(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&repo.listCalls))
}

func TestListIndexesProductsForGet(t *testing.T) {
	repo := &countingRepo{products: []models.Product{{ID: "p1", Name: "one", Price: 10, InStock: true}}}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)

	p, err := svc.Get(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "one", p.Name)
	assert.Zero(t, atomic.LoadInt32(&repo.getCalls), "listing warms the by-id cache")
}

func TestGetUnknownProduct(t *testing.T) {
	repo := &countingRepo{}
	svc := NewService(repo)

	p, err := svc.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetPropagatesRepositoryErrors(t *testing.T) {
	repo := &countingRepo{err: errors.New("db down")}
	svc := NewService(repo)

	_, err := svc.Get(context.Background(), "p1")
	require.Error(t, err)
}

func TestConcurrentGetsCollapseIntoOneQuery(t *testing.T) {
	repo := &countingRepo{products: []models.Product{{ID: "p1", Name: "one", Price: 10, InStock: true}}}
	svc := NewService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Get(context.Background(), "p1")
		}()
	}
	wg.Wait()

	// singleflight may let a second query through when a flight completes
	// between goroutine starts, but nothing close to one per caller
	assert.LessOrEqual(t, atomic.LoadInt32(&repo.getCalls), int32(3))
}
