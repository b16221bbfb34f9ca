package service

import (
	"context"

	"github.com/Dhoini/Storefront-gateway/config"
	stripeclient "github.com/Dhoini/Storefront-gateway/internal/integration/stripe"
	"github.com/Dhoini/Storefront-gateway/internal/kafka/producer"
	"github.com/Dhoini/Storefront-gateway/internal/metrics"
	"github.com/Dhoini/Storefront-gateway/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stripe/stripe-go/v78"
)

// fakeStripe реализует stripeclient.Client через настраиваемые функции.
// Ненастроенный метод возвращает нулевые значения; каждый вызов считается.
type fakeStripe struct {
	listActiveProductsFn    func(ctx context.Context, limit int64) ([]*stripe.Product, error)
	getProductFn            func(ctx context.Context, id string) (*stripe.Product, error)
	createProductFn         func(ctx context.Context, name string) (*stripe.Product, error)
	renameProductFn         func(ctx context.Context, id, name string) (*stripe.Product, error)
	setDefaultPriceFn       func(ctx context.Context, productID, priceID string) (*stripe.Product, error)
	archiveProductFn        func(ctx context.Context, id string) (*stripe.Product, error)
	getPriceFn              func(ctx context.Context, id string) (*stripe.Price, error)
	createPriceFn           func(ctx context.Context, productID string, unitAmount int64) (*stripe.Price, error)
	findActivePriceFn       func(ctx context.Context, productID string) (*stripe.Price, error)
	deactivatePriceFn       func(ctx context.Context, id string) (*stripe.Price, error)
	listCompletedSessionsFn func(ctx context.Context, limit int64) ([]*stripe.CheckoutSession, error)
	listSessionLineItemsFn  func(ctx context.Context, sessionID string) ([]*stripe.LineItem, error)
	createCheckoutSessionFn func(ctx context.Context, priceID string) (*stripe.CheckoutSession, error)

	calls map[string]int
}

var _ stripeclient.Client = (*fakeStripe)(nil)

func (f *fakeStripe) record(name string) {
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
}

func (f *fakeStripe) ListActiveProducts(ctx context.Context, limit int64) ([]*stripe.Product, error) {
	f.record("ListActiveProducts")
	if f.listActiveProductsFn == nil {
		return nil, nil
	}
	return f.listActiveProductsFn(ctx, limit)
}

func (f *fakeStripe) GetProduct(ctx context.Context, id string) (*stripe.Product, error) {
	f.record("GetProduct")
	if f.getProductFn == nil {
		return &stripe.Product{ID: id}, nil
	}
	return f.getProductFn(ctx, id)
}

func (f *fakeStripe) CreateProduct(ctx context.Context, name string) (*stripe.Product, error) {
	f.record("CreateProduct")
	if f.createProductFn == nil {
		return &stripe.Product{ID: "prod_fake", Name: name}, nil
	}
	return f.createProductFn(ctx, name)
}

func (f *fakeStripe) RenameProduct(ctx context.Context, id, name string) (*stripe.Product, error) {
	f.record("RenameProduct")
	if f.renameProductFn == nil {
		return &stripe.Product{ID: id, Name: name}, nil
	}
	return f.renameProductFn(ctx, id, name)
}

func (f *fakeStripe) SetDefaultPrice(ctx context.Context, productID, priceID string) (*stripe.Product, error) {
	f.record("SetDefaultPrice")
	if f.setDefaultPriceFn == nil {
		return &stripe.Product{ID: productID}, nil
	}
	return f.setDefaultPriceFn(ctx, productID, priceID)
}

func (f *fakeStripe) ArchiveProduct(ctx context.Context, id string) (*stripe.Product, error) {
	f.record("ArchiveProduct")
	if f.archiveProductFn == nil {
		return &stripe.Product{ID: id, Active: false}, nil
	}
	return f.archiveProductFn(ctx, id)
}

func (f *fakeStripe) GetPrice(ctx context.Context, id string) (*stripe.Price, error) {
	f.record("GetPrice")
	if f.getPriceFn == nil {
		return &stripe.Price{ID: id}, nil
	}
	return f.getPriceFn(ctx, id)
}

func (f *fakeStripe) CreatePrice(ctx context.Context, productID string, unitAmount int64) (*stripe.Price, error) {
	f.record("CreatePrice")
	if f.createPriceFn == nil {
		return &stripe.Price{ID: "price_fake", UnitAmount: unitAmount}, nil
	}
	return f.createPriceFn(ctx, productID, unitAmount)
}

func (f *fakeStripe) FindActivePrice(ctx context.Context, productID string) (*stripe.Price, error) {
	f.record("FindActivePrice")
	if f.findActivePriceFn == nil {
		return nil, nil
	}
	return f.findActivePriceFn(ctx, productID)
}

func (f *fakeStripe) DeactivatePrice(ctx context.Context, id string) (*stripe.Price, error) {
	f.record("DeactivatePrice")
	if f.deactivatePriceFn == nil {
		return &stripe.Price{ID: id, Active: false}, nil
	}
	return f.deactivatePriceFn(ctx, id)
}

func (f *fakeStripe) ListCompletedSessions(ctx context.Context, limit int64) ([]*stripe.CheckoutSession, error) {
	f.record("ListCompletedSessions")
	if f.listCompletedSessionsFn == nil {
		return nil, nil
	}
	return f.listCompletedSessionsFn(ctx, limit)
}

func (f *fakeStripe) ListSessionLineItems(ctx context.Context, sessionID string) ([]*stripe.LineItem, error) {
	f.record("ListSessionLineItems")
	if f.listSessionLineItemsFn == nil {
		return nil, nil
	}
	return f.listSessionLineItemsFn(ctx, sessionID)
}

func (f *fakeStripe) CreateCheckoutSession(ctx context.Context, priceID string) (*stripe.CheckoutSession, error) {
	f.record("CreateCheckoutSession")
	if f.createCheckoutSessionFn == nil {
		return &stripe.CheckoutSession{ID: "cs_fake", URL: "https://checkout.stripe.com/pay/cs_fake"}, nil
	}
	return f.createCheckoutSessionFn(ctx, priceID)
}

// testConfig возвращает конфигурацию для тестов сервисов
func testConfig() *config.Config {
	return &config.Config{
		Stripe: config.StripeConfig{
			Currency:         "usd",
			CatalogPageLimit: 100,
			OrdersPageLimit:  10,
		},
	}
}

// testMetrics возвращает метрики с изолированным реестром
func testMetrics() metrics.GatewayMetrics {
	return metrics.NewGatewayMetrics(prometheus.NewRegistry(), testLogger())
}

// testLogger возвращает логгер, пишущий только ошибки
func testLogger() *logger.Logger {
	return logger.New(logger.FATAL)
}

func newTestCatalog(fake *fakeStripe) *CatalogService {
	return newCatalogWithClient(fake)
}

func newCatalogWithClient(client stripeclient.Client) *CatalogService {
	return NewCatalogService(client, producer.NopProducer{}, testMetrics(), testConfig(), testLogger())
}

func newTestOrders(fake *fakeStripe) *OrderService {
	return NewOrderService(fake, testConfig(), testLogger())
}

func newTestCheckout(fake *fakeStripe) *CheckoutService {
	return NewCheckoutService(fake, producer.NopProducer{}, testMetrics(), testLogger())
}
