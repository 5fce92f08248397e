package application

import (
	"context"
	"time"

	"github.com/shopilens/storefront-api/internal/domains/catalog/domain"
	"github.com/shopilens/storefront-api/internal/domains/catalog/ports"
)

// DefaultCacheWindow is how long a fetched catalog is served without hitting
// the remote source again.
const DefaultCacheWindow = 5 * time.Minute

// Service orchestrates catalog use cases over a remote source and a local
// cache. The cache is replaced wholesale on every refresh; a failed refresh
// falls back to stale data when the cache is warm.
type Service struct {
	source ports.Source
	repo   ports.Repository
	window time.Duration
	now    func() time.Time
}

type Option func(*Service)

// WithCacheWindow overrides the catalog cache window.
func WithCacheWindow(window time.Duration) Option {
	return func(s *Service) {
		if window > 0 {
			s.window = window
		}
	}
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(source ports.Source, repo ports.Repository, opts ...Option) *Service {
	s := &Service{
		source: source,
		repo:   repo,
		window: DefaultCacheWindow,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	products, _, err := s.repo.List(ctx)
	return products, err
}

func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, mapError(domain.ErrInvalidID)
	}
	if err := s.refresh(ctx); err != nil {
		return domain.Product{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	categories := make([]string, 0, 4)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok || p.Category == "" {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}

func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, query)
}

// refresh refetches the catalog when the cached copy is older than the cache
// window. Remote failures are swallowed while the cache is warm.
func (s *Service) refresh(ctx context.Context) error {
	_, fetchedAt, err := s.repo.List(ctx)
	warm := err == nil && !fetchedAt.IsZero()
	if warm && s.now().Sub(fetchedAt) < s.window {
		return nil
	}
	fetched, err := s.source.FetchProducts(ctx)
	if err != nil {
		if warm {
			return nil
		}
		return mapError(err)
	}
	valid := make([]domain.Product, 0, len(fetched))
	for i := range fetched {
		if fetched[i].Validate() != nil {
			continue
		}
		valid = append(valid, fetched[i])
	}
	return s.repo.ReplaceAll(ctx, valid, s.now())
}

var _ ports.Service = (*Service)(nil)
