package service

import (
	"context"

	"github.com/Dhoini/Storefront-gateway/internal/domain"
	stripeclient "github.com/Dhoini/Storefront-gateway/internal/integration/stripe"
	"github.com/Dhoini/Storefront-gateway/internal/kafka/producer"
	"github.com/Dhoini/Storefront-gateway/internal/metrics"
	"github.com/Dhoini/Storefront-gateway/pkg/logger"
)

// CheckoutService создает checkout-сессии Stripe
type CheckoutService struct {
	stripe  stripeclient.Client
	events  producer.EventProducer
	metrics metrics.GatewayMetrics
	log     *logger.Logger
}

// NewCheckoutService создает новый сервис checkout
func NewCheckoutService(client stripeclient.Client, events producer.EventProducer, m metrics.GatewayMetrics, log *logger.Logger) *CheckoutService {
	return &CheckoutService{
		stripe:  client,
		events:  events,
		metrics: m,
		log:     log,
	}
}

// CreateSession создает одноразовую платежную сессию на одну позицию
// и возвращает URL hosted-страницы Stripe. Валидация происходит до
// обращения к платформе: без price_id исходящих вызовов нет.
func (s *CheckoutService) CreateSession(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.CheckoutResponse{}, err
	}

	session, err := s.stripe.CreateCheckoutSession(ctx, req.PriceID)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}

	s.metrics.IncCheckoutSessionCreated()

	if err := s.events.PublishCheckoutCreated(ctx, session.ID, req.PriceID, session.URL); err != nil {
		s.log.Warnw("Failed to publish checkout.session.created event", "sessionID", session.ID, "error", err)
	}

	s.log.Infow("Checkout session created", "sessionID", session.ID, "priceID", req.PriceID)
	return domain.CheckoutResponse{URL: session.URL}, nil
}
