package stripe

import (
	"context"
	"net/http"
	"time"

	"github.com/Dhoini/Storefront-gateway/config"
	"github.com/Dhoini/Storefront-gateway/internal/metrics"
	"github.com/Dhoini/Storefront-gateway/pkg/logger"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// Client определяет операции Stripe API, необходимые сервису.
// Интерфейс позволяет подменять SDK в тестах.
type Client interface {
	// ListActiveProducts возвращает активные продукты, не более limit штук.
	ListActiveProducts(ctx context.Context, limit int64) ([]*stripe.Product, error)

	// GetProduct возвращает продукт по ID.
	GetProduct(ctx context.Context, id string) (*stripe.Product, error)

	// CreateProduct создает новый продукт.
	CreateProduct(ctx context.Context, name string) (*stripe.Product, error)

	// RenameProduct изменяет название продукта.
	RenameProduct(ctx context.Context, id, name string) (*stripe.Product, error)

	// SetDefaultPrice делает цену ценой продукта по умолчанию.
	SetDefaultPrice(ctx context.Context, productID, priceID string) (*stripe.Product, error)

	// ArchiveProduct архивирует продукт (active=false). Физическое удаление
	// продукта с привязанными ценами Stripe не поддерживает.
	ArchiveProduct(ctx context.Context, id string) (*stripe.Product, error)

	// GetPrice возвращает цену по ID.
	GetPrice(ctx context.Context, id string) (*stripe.Price, error)

	// CreatePrice создает новую цену для продукта. Цены в Stripe неизменяемы:
	// "изменение цены" всегда означает создание новой записи.
	CreatePrice(ctx context.Context, productID string, unitAmount int64) (*stripe.Price, error)

	// FindActivePrice возвращает активную цену продукта или nil, если ее нет.
	FindActivePrice(ctx context.Context, productID string) (*stripe.Price, error)

	// DeactivatePrice деактивирует цену.
	DeactivatePrice(ctx context.Context, id string) (*stripe.Price, error)

	// ListCompletedSessions возвращает завершенные checkout-сессии, не более limit штук.
	ListCompletedSessions(ctx context.Context, limit int64) ([]*stripe.CheckoutSession, error)

	// ListSessionLineItems возвращает позиции checkout-сессии.
	ListSessionLineItems(ctx context.Context, sessionID string) ([]*stripe.LineItem, error)

	// CreateCheckoutSession создает одноразовую платежную сессию на одну
	// позицию и возвращает ее вместе с hosted-URL.
	CreateCheckoutSession(ctx context.Context, priceID string) (*stripe.CheckoutSession, error)
}

// stripeClient реализует интерфейс Client поверх официального SDK.
type stripeClient struct {
	client   *client.API
	currency string
	checkout config.CheckoutConfig
	metrics  metrics.GatewayMetrics
	log      *logger.Logger
}

// NewClient создает новый клиент Stripe с явной политикой исходящих вызовов:
// таймаут HTTP клиента и число сетевых повторов берутся из конфигурации,
// а не остаются неявными умолчаниями SDK.
func NewClient(cfg *config.Config, m metrics.GatewayMetrics, log *logger.Logger) Client {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Stripe.RequestTimeout) * time.Second,
		},
		MaxNetworkRetries: stripe.Int64(int64(cfg.Stripe.MaxNetworkRetries)),
	})

	sc := &client.API{}
	sc.Init(cfg.Stripe.APIKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})

	return &stripeClient{
		client:   sc,
		currency: cfg.Stripe.Currency,
		checkout: cfg.Checkout,
		metrics:  m,
		log:      log,
	}
}

// ListActiveProducts возвращает активные продукты в порядке выдачи Stripe
func (sc *stripeClient) ListActiveProducts(ctx context.Context, limit int64) ([]*stripe.Product, error) {
	params := &stripe.ProductListParams{Active: stripe.Bool(true)}
	params.Limit = stripe.Int64(limit)
	params.Context = ctx

	var products []*stripe.Product
	iter := sc.client.Products.List(params)
	for iter.Next() {
		products = append(products, iter.Product())
		// Итератор SDK прозрачно листает страницы; выдачу ограничиваем сами
		if int64(len(products)) >= limit {
			break
		}
	}
	if err := iter.Err(); err != nil {
		return nil, sc.wrapErr("list_products", err)
	}

	sc.metrics.IncUpstreamCall("list_products", metrics.OutcomeSuccess)
	sc.log.Debug("Fetched %d active products from Stripe", len(products))
	return products, nil
}

// GetProduct возвращает продукт по ID
func (sc *stripeClient) GetProduct(ctx context.Context, id string) (*stripe.Product, error) {
	params := &stripe.ProductParams{}
	params.Context = ctx

	prod, err := sc.client.Products.Get(id, params)
	if err != nil {
		return nil, sc.wrapErr("get_product", err)
	}

	sc.metrics.IncUpstreamCall("get_product", metrics.OutcomeSuccess)
	return prod, nil
}

// CreateProduct создает новый продукт
func (sc *stripeClient) CreateProduct(ctx context.Context, name string) (*stripe.Product, error) {
	params := &stripe.ProductParams{Name: stripe.String(name)}
	params.Context = ctx

	prod, err := sc.client.Products.New(params)
	if err != nil {
		return nil, sc.wrapErr("create_product", err)
	}

	sc.metrics.IncUpstreamCall("create_product", metrics.OutcomeSuccess)
	sc.log.Infow("Stripe product created", "productID", prod.ID, "name", name)
	return prod, nil
}

// RenameProduct изменяет название продукта
func (sc *stripeClient) RenameProduct(ctx context.Context, id, name string) (*stripe.Product, error) {
	params := &stripe.ProductParams{Name: stripe.String(name)}
	params.Context = ctx

	prod, err := sc.client.Products.Update(id, params)
	if err != nil {
		return nil, sc.wrapErr("rename_product", err)
	}

	sc.metrics.IncUpstreamCall("rename_product", metrics.OutcomeSuccess)
	sc.log.Infow("Stripe product renamed", "productID", id, "name", name)
	return prod, nil
}

// SetDefaultPrice делает цену ценой продукта по умолчанию
func (sc *stripeClient) SetDefaultPrice(ctx context.Context, productID, priceID string) (*stripe.Product, error) {
	params := &stripe.ProductParams{DefaultPrice: stripe.String(priceID)}
	params.Context = ctx

	prod, err := sc.client.Products.Update(productID, params)
	if err != nil {
		return nil, sc.wrapErr("set_default_price", err)
	}

	sc.metrics.IncUpstreamCall("set_default_price", metrics.OutcomeSuccess)
	return prod, nil
}

// ArchiveProduct архивирует продукт
func (sc *stripeClient) ArchiveProduct(ctx context.Context, id string) (*stripe.Product, error) {
	params := &stripe.ProductParams{Active: stripe.Bool(false)}
	params.Context = ctx

	prod, err := sc.client.Products.Update(id, params)
	if err != nil {
		return nil, sc.wrapErr("archive_product", err)
	}

	sc.metrics.IncUpstreamCall("archive_product", metrics.OutcomeSuccess)
	sc.log.Infow("Stripe product archived", "productID", id)
	return prod, nil
}

// GetPrice возвращает цену по ID
func (sc *stripeClient) GetPrice(ctx context.Context, id string) (*stripe.Price, error) {
	params := &stripe.PriceParams{}
	params.Context = ctx

	price, err := sc.client.Prices.Get(id, params)
	if err != nil {
		return nil, sc.wrapErr("get_price", err)
	}

	sc.metrics.IncUpstreamCall("get_price", metrics.OutcomeSuccess)
	return price, nil
}

// CreatePrice создает новую цену для продукта
func (sc *stripeClient) CreatePrice(ctx context.Context, productID string, unitAmount int64) (*stripe.Price, error) {
	params := &stripe.PriceParams{
		Product:    stripe.String(productID),
		UnitAmount: stripe.Int64(unitAmount),
		Currency:   stripe.String(sc.currency),
	}
	params.Context = ctx

	price, err := sc.client.Prices.New(params)
	if err != nil {
		return nil, sc.wrapErr("create_price", err)
	}

	sc.metrics.IncUpstreamCall("create_price", metrics.OutcomeSuccess)
	sc.log.Infow("Stripe price created", "priceID", price.ID, "productID", productID, "unitAmount", unitAmount)
	return price, nil
}

// FindActivePrice возвращает первую активную цену продукта или nil
func (sc *stripeClient) FindActivePrice(ctx context.Context, productID string) (*stripe.Price, error) {
	params := &stripe.PriceListParams{
		Product: stripe.String(productID),
		Active:  stripe.Bool(true),
	}
	params.Limit = stripe.Int64(1)
	params.Context = ctx

	iter := sc.client.Prices.List(params)
	if iter.Next() {
		sc.metrics.IncUpstreamCall("find_active_price", metrics.OutcomeSuccess)
		return iter.Price(), nil
	}
	if err := iter.Err(); err != nil {
		return nil, sc.wrapErr("find_active_price", err)
	}

	sc.metrics.IncUpstreamCall("find_active_price", metrics.OutcomeSuccess)
	return nil, nil
}

// DeactivatePrice деактивирует цену
func (sc *stripeClient) DeactivatePrice(ctx context.Context, id string) (*stripe.Price, error) {
	params := &stripe.PriceParams{Active: stripe.Bool(false)}
	params.Context = ctx

	price, err := sc.client.Prices.Update(id, params)
	if err != nil {
		return nil, sc.wrapErr("deactivate_price", err)
	}

	sc.metrics.IncUpstreamCall("deactivate_price", metrics.OutcomeSuccess)
	sc.log.Infow("Stripe price deactivated", "priceID", id)
	return price, nil
}

// ListCompletedSessions возвращает завершенные checkout-сессии
func (sc *stripeClient) ListCompletedSessions(ctx context.Context, limit int64) ([]*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionListParams{
		Status: stripe.String(string(stripe.CheckoutSessionStatusComplete)),
	}
	params.Limit = stripe.Int64(limit)
	params.Context = ctx

	var sessions []*stripe.CheckoutSession
	iter := sc.client.CheckoutSessions.List(params)
	for iter.Next() {
		sessions = append(sessions, iter.CheckoutSession())
		if int64(len(sessions)) >= limit {
			break
		}
	}
	if err := iter.Err(); err != nil {
		return nil, sc.wrapErr("list_sessions", err)
	}

	sc.metrics.IncUpstreamCall("list_sessions", metrics.OutcomeSuccess)
	sc.log.Debug("Fetched %d completed checkout sessions from Stripe", len(sessions))
	return sessions, nil
}

// ListSessionLineItems возвращает позиции checkout-сессии
func (sc *stripeClient) ListSessionLineItems(ctx context.Context, sessionID string) ([]*stripe.LineItem, error) {
	params := &stripe.CheckoutSessionListLineItemsParams{
		Session: stripe.String(sessionID),
	}
	params.Context = ctx

	var items []*stripe.LineItem
	iter := sc.client.CheckoutSessions.ListLineItems(params)
	for iter.Next() {
		items = append(items, iter.LineItem())
	}
	if err := iter.Err(); err != nil {
		return nil, sc.wrapErr("list_line_items", err)
	}

	sc.metrics.IncUpstreamCall("list_line_items", metrics.OutcomeSuccess)
	return items, nil
}

// CreateCheckoutSession создает одноразовую платежную сессию
func (sc *stripeClient) CreateCheckoutSession(ctx context.Context, priceID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(sc.checkout.SuccessURL),
		CancelURL:  stripe.String(sc.checkout.CancelURL),
	}
	params.Context = ctx

	session, err := sc.client.CheckoutSessions.New(params)
	if err != nil {
		return nil, sc.wrapErr("create_session", err)
	}

	sc.metrics.IncUpstreamCall("create_session", metrics.OutcomeSuccess)
	sc.log.Infow("Stripe checkout session created", "sessionID", session.ID, "priceID", priceID)
	return session, nil
}

// wrapErr переводит ошибку SDK в доменную и учитывает ее в метриках
func (sc *stripeClient) wrapErr(op string, err error) error {
	sc.metrics.IncUpstreamCall(op, metrics.OutcomeError)
	logStripeError(sc.log, op, err)
	return translateError(op, err)
}
