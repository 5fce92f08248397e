package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	cartdomain "github.com/shopilens/storefront-api/internal/domains/cart/domain"
	cartports "github.com/shopilens/storefront-api/internal/domains/cart/ports"
)

const tracerName = "github.com/shopilens/storefront-api/internal/domains/cart/adapters/observability/service"

// Service decorates the cart service with tracing, logging, and metrics.
type Service struct {
	inner   cartports.Service
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

// New wraps the core cart service.
func New(inner cartports.Service, opts ...Option) cartports.Service {
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

func (s *Service) Read(ctx context.Context, raw string) (cartdomain.Cart, string, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.Read")
	defer span.End()

	cart, encoded, err := s.inner.Read(ctx, raw)
	if err != nil {
		return nil, "", s.handleError(ctx, span, err, "failed to read cart")
	}
	span.SetAttributes(attribute.Int("cart.line_items", len(cart)))
	s.metrics.recordOperation(ctx, "read")
	return cart, encoded, nil
}

func (s *Service) Add(ctx context.Context, raw string, product cartdomain.Product, quantity int64) (cartdomain.Cart, string, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.Add",
		trace.WithAttributes(attribute.Int64("product.id", product.ID), attribute.Int64("cart.quantity", quantity)))
	defer span.End()

	s.logInfo(ctx, "adding product to cart", slog.Int64("product.id", product.ID), slog.Int64("quantity", quantity))
	cart, encoded, err := s.inner.Add(ctx, raw, product, quantity)
	if err != nil {
		return nil, "", s.handleError(ctx, span, err, "failed to add product to cart", slog.Int64("product.id", product.ID))
	}
	s.metrics.recordOperation(ctx, "add")
	s.metrics.recordSize(ctx, cart)
	s.logInfo(ctx, "product added to cart", slog.Int64("product.id", product.ID), slog.Int64("cart.items", cart.ItemCount()))
	return cart, encoded, nil
}

func (s *Service) SetQuantity(ctx context.Context, raw string, productID, quantity int64) (cartdomain.Cart, string, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.SetQuantity",
		trace.WithAttributes(attribute.Int64("product.id", productID), attribute.Int64("cart.quantity", quantity)))
	defer span.End()

	s.logInfo(ctx, "updating cart quantity", slog.Int64("product.id", productID), slog.Int64("quantity", quantity))
	cart, encoded, err := s.inner.SetQuantity(ctx, raw, productID, quantity)
	if err != nil {
		return nil, "", s.handleError(ctx, span, err, "failed to update cart quantity", slog.Int64("product.id", productID))
	}
	s.metrics.recordOperation(ctx, "set_quantity")
	s.metrics.recordSize(ctx, cart)
	return cart, encoded, nil
}

func (s *Service) Remove(ctx context.Context, raw string, productID int64) (cartdomain.Cart, string, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.Remove",
		trace.WithAttributes(attribute.Int64("product.id", productID)))
	defer span.End()

	s.logInfo(ctx, "removing product from cart", slog.Int64("product.id", productID))
	cart, encoded, err := s.inner.Remove(ctx, raw, productID)
	if err != nil {
		return nil, "", s.handleError(ctx, span, err, "failed to remove product from cart", slog.Int64("product.id", productID))
	}
	s.metrics.recordOperation(ctx, "remove")
	s.metrics.recordSize(ctx, cart)
	return cart, encoded, nil
}

func (s *Service) Clear(ctx context.Context, raw string) (cartdomain.Cart, string, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.Clear")
	defer span.End()

	s.logInfo(ctx, "clearing cart")
	cart, encoded, err := s.inner.Clear(ctx, raw)
	if err != nil {
		return nil, "", s.handleError(ctx, span, err, "failed to clear cart")
	}
	s.metrics.recordOperation(ctx, "clear")
	return cart, encoded, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
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
	operations metric.Int64Counter
	cartSize   metric.Int64Histogram
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	operations, _ := m.Int64Counter("cart.service.operations", metric.WithDescription("Number of cart operations"))
	cartSize, _ := m.Int64Histogram("cart.service.size", metric.WithDescription("Cart item count after a mutation"))
	return serviceMetrics{operations: operations, cartSize: cartSize}
}

func (m serviceMetrics) recordOperation(ctx context.Context, operation string) {
	if m.operations != nil {
		m.operations.Add(ctx, 1, metric.WithAttributes(attribute.String("cart.operation", operation)))
	}
}

func (m serviceMetrics) recordSize(ctx context.Context, cart cartdomain.Cart) {
	if m.cartSize != nil {
		m.cartSize.Record(ctx, cart.ItemCount())
	}
}

var _ cartports.Service = (*Service)(nil)
