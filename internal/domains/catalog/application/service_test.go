package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shopilens/storefront-api/internal/domains/catalog/domain"
	catalogmemory "github.com/shopilens/storefront-api/internal/domains/catalog/adapters/memory"
)

type fakeSource struct {
	products []domain.Product
	err      error
	calls    int
}

func (f *fakeSource) FetchProducts(_ context.Context) ([]domain.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func catalogFixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Backpack", Price: 109.95, Category: "men's clothing"},
		{ID: 2, Title: "Gold Ring", Price: 168, Category: "jewelery"},
		{ID: 3, Title: "Monitor", Price: 999.99, Category: "electronics"},
		{ID: 4, Title: "SSD Drive", Price: 109, Category: "electronics"},
	}
}

func TestListProducts_FetchesOnceWithinWindow(t *testing.T) {
	source := &fakeSource{products: catalogFixture()}
	svc := NewService(source, catalogmemory.NewRepository())
	ctx := context.Background()

	first, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, first, 4)

	second, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, source.calls)
}

func TestListProducts_RefreshesAfterWindow(t *testing.T) {
	now := time.Now()
	source := &fakeSource{products: catalogFixture()}
	svc := NewService(source, catalogmemory.NewRepository(),
		WithCacheWindow(time.Minute),
		WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	_, err := svc.ListProducts(ctx)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, source.calls)
}

func TestListProducts_ColdCacheSourceFailure(t *testing.T) {
	source := &fakeSource{err: errors.New("connect refused")}
	svc := NewService(source, catalogmemory.NewRepository())

	_, err := svc.ListProducts(context.Background())
	require.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestListProducts_StaleCacheServedOnSourceFailure(t *testing.T) {
	now := time.Now()
	source := &fakeSource{products: catalogFixture()}
	svc := NewService(source, catalogmemory.NewRepository(),
		WithCacheWindow(time.Minute),
		WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	_, err := svc.ListProducts(ctx)
	require.NoError(t, err)

	source.err = errors.New("connect refused")
	now = now.Add(2 * time.Minute)

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 4)
}

func TestListProducts_DropsInvalidEntries(t *testing.T) {
	source := &fakeSource{products: []domain.Product{
		{ID: 1, Title: "Backpack", Price: 109.95},
		{ID: 0, Title: "Ghost", Price: 1},
		{ID: 2, Title: "", Price: 1},
	}}
	svc := NewService(source, catalogmemory.NewRepository())

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, int64(1), products[0].ID)
}

func TestGetProduct(t *testing.T) {
	source := &fakeSource{products: catalogFixture()}
	svc := NewService(source, catalogmemory.NewRepository())
	ctx := context.Background()

	product, err := svc.GetProduct(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "Gold Ring", product.Title)

	_, err = svc.GetProduct(ctx, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCategories_UniquePreservingOrder(t *testing.T) {
	source := &fakeSource{products: catalogFixture()}
	svc := NewService(source, catalogmemory.NewRepository())

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"men's clothing", "jewelery", "electronics"}, categories)
}

func TestSearch(t *testing.T) {
	source := &fakeSource{products: catalogFixture()}
	svc := NewService(source, catalogmemory.NewRepository())

	results, err := svc.Search(context.Background(), "electronics")
	require.NoError(t, err)
	require.Len(t, results, 2)
}
