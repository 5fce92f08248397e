package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	catalogdomain "github.com/shopilens/storefront-api/internal/domains/catalog/domain"
	catalogports "github.com/shopilens/storefront-api/internal/domains/catalog/ports"
)

const tracerName = "github.com/shopilens/storefront-api/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing, logging, and metrics.
type Service struct {
	inner   catalogports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core catalog service.
func New(inner catalogports.Service, opts ...Option) catalogports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) ListProducts(ctx context.Context) ([]catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListProducts")
	defer span.End()

	products, err := s.inner.ListProducts(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("catalog.products", len(products)))
	s.metrics.recordLookup(ctx, "list")
	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetProduct",
		trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	product, err := s.inner.GetProduct(ctx, id)
	if err != nil {
		return catalogdomain.Product{}, s.handleError(ctx, span, err, "failed to load product", slog.Int64("product.id", id))
	}
	s.metrics.recordLookup(ctx, "get")
	return product, nil
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Categories")
	defer span.End()

	categories, err := s.inner.Categories(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list categories")
	}
	span.SetAttributes(attribute.Int("catalog.categories", len(categories)))
	s.metrics.recordLookup(ctx, "categories")
	return categories, nil
}

func (s *Service) Search(ctx context.Context, query string) ([]catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Search",
		trace.WithAttributes(attribute.String("catalog.query", query)))
	defer span.End()

	results, err := s.inner.Search(ctx, query)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to search catalog", slog.String("query", query))
	}
	span.SetAttributes(attribute.Int("catalog.results", len(results)))
	s.metrics.recordLookup(ctx, "search")
	return results, nil
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	lookups metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	lookups, _ := m.Int64Counter("catalog.service.lookups", metric.WithDescription("Number of catalog lookups"))
	return serviceMetrics{lookups: lookups}
}

func (m serviceMetrics) recordLookup(ctx context.Context, operation string) {
	if m.lookups != nil {
		m.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("catalog.operation", operation)))
	}
}

var _ catalogports.Service = (*Service)(nil)
