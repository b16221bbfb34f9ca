package service

import (
	"context"

	"github.com/Dhoini/Storefront-gateway/config"
	"github.com/Dhoini/Storefront-gateway/internal/domain"
	stripeclient "github.com/Dhoini/Storefront-gateway/internal/integration/stripe"
	"github.com/Dhoini/Storefront-gateway/internal/kafka/producer"
	"github.com/Dhoini/Storefront-gateway/internal/metrics"
	"github.com/Dhoini/Storefront-gateway/pkg/logger"
)

// fallbackCatalog статический каталог на случай недоступности Stripe.
// Каталог — некритичное чтение: витрина должна оставаться просматриваемой,
// поэтому GET /products деградирует до этого списка вместо ошибки.
var fallbackCatalog = []domain.Product{
	{ID: "1", Name: "Small Coffee", Price: 3, PriceID: "price_small"},
	{ID: "2", Name: "Medium Coffee", Price: 5, PriceID: "price_medium"},
	{ID: "3", Name: "Large Coffee", Price: 7, PriceID: "price_large"},
	{ID: "4", Name: "Coffee Bundle", Price: 20, PriceID: "price_bundle"},
}

// CatalogService управляет каталогом товаров поверх Stripe
type CatalogService struct {
	stripe       stripeclient.Client
	events       producer.EventProducer
	metrics      metrics.GatewayMetrics
	log          *logger.Logger
	catalogLimit int64
}

// NewCatalogService создает новый сервис каталога
func NewCatalogService(client stripeclient.Client, events producer.EventProducer, m metrics.GatewayMetrics, cfg *config.Config, log *logger.Logger) *CatalogService {
	return &CatalogService{
		stripe:       client,
		events:       events,
		metrics:      m,
		log:          log,
		catalogLimit: cfg.Stripe.CatalogPageLimit,
	}
}

// ListProducts возвращает товары каталога в порядке выдачи Stripe.
// Продукты без активной цены пропускаются. При любой ошибке платформы,
// а также при пустом каталоге, возвращается статический fallback.
func (s *CatalogService) ListProducts(ctx context.Context) []domain.Product {
	stripeProducts, err := s.stripe.ListActiveProducts(ctx, s.catalogLimit)
	if err != nil {
		s.log.Warnw("Falling back to static catalog", "error", err)
		return s.fallback()
	}

	formatted := make([]domain.Product, 0, len(stripeProducts))
	for _, p := range stripeProducts {
		price, err := s.stripe.FindActivePrice(ctx, p.ID)
		if err != nil {
			s.log.Warnw("Falling back to static catalog", "productID", p.ID, "error", err)
			return s.fallback()
		}
		if price == nil {
			s.log.Warnw("Product has no active price, skipping", "productID", p.ID, "name", p.Name)
			continue
		}
		formatted = append(formatted, stripeclient.ToDomainProduct(p, price))
	}

	if len(formatted) == 0 {
		s.log.Warn("No products found in Stripe, returning static catalog")
		return s.fallback()
	}

	return formatted
}

// CreateProduct создает товар: продукт Stripe и привязанную к нему цену
func (s *CatalogService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	if err := req.Validate(); err != nil {
		return domain.Product{}, err
	}

	stripeProduct, err := s.stripe.CreateProduct(ctx, req.Name)
	if err != nil {
		return domain.Product{}, err
	}

	price, err := s.stripe.CreatePrice(ctx, stripeProduct.ID, domain.ToMinorUnits(req.Price))
	if err != nil {
		// Компенсации нет: продукт остается в Stripe без цены и не попадет
		// в выдачу каталога, пока цена не будет создана вручную
		s.log.Errorw("Product created but price creation failed", "productID", stripeProduct.ID, "error", err)
		return domain.Product{}, err
	}

	product := domain.Product{
		ID:      stripeProduct.ID,
		Name:    req.Name,
		Price:   req.Price,
		PriceID: price.ID,
	}

	if err := s.events.PublishProductCreated(ctx, product); err != nil {
		s.log.Warnw("Failed to publish product.created event", "productID", product.ID, "error", err)
	}

	s.log.Infow("Product created", "productID", product.ID, "priceID", product.PriceID)
	return product, nil
}

// UpdateProduct обновляет название и/или цену товара. Цены в Stripe
// неизменяемы, поэтому смена цены — это последовательность: новая цена →
// цена по умолчанию → деактивация старой. Последовательность не атомарна:
// ошибка между шагами оставляет частичное состояние без отката.
func (s *CatalogService) UpdateProduct(ctx context.Context, productID string, req domain.UpdateProductRequest) (domain.Product, error) {
	if err := req.Validate(); err != nil {
		return domain.Product{}, err
	}

	stripeProduct, err := s.stripe.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}

	currentPrice, err := s.stripe.GetPrice(ctx, req.PriceID)
	if err != nil {
		return domain.Product{}, err
	}

	if req.Name != stripeProduct.Name {
		if _, err := s.stripe.RenameProduct(ctx, productID, req.Name); err != nil {
			return domain.Product{}, err
		}
	}

	// Сравниваем в основных единицах: так же, как цену видит клиент
	priceID := currentPrice.ID
	if req.Price != domain.ToMajorUnits(currentPrice.UnitAmount) {
		newPrice, err := s.stripe.CreatePrice(ctx, productID, domain.ToMinorUnits(req.Price))
		if err != nil {
			return domain.Product{}, err
		}

		if _, err := s.stripe.SetDefaultPrice(ctx, productID, newPrice.ID); err != nil {
			return domain.Product{}, err
		}

		if _, err := s.stripe.DeactivatePrice(ctx, currentPrice.ID); err != nil {
			return domain.Product{}, err
		}

		priceID = newPrice.ID
	}

	product := domain.Product{
		ID:      productID,
		Name:    req.Name,
		Price:   req.Price,
		PriceID: priceID,
	}

	if err := s.events.PublishProductUpdated(ctx, product); err != nil {
		s.log.Warnw("Failed to publish product.updated event", "productID", product.ID, "error", err)
	}

	s.log.Infow("Product updated", "productID", product.ID, "priceID", product.PriceID)
	return product, nil
}

// ArchiveProduct архивирует товар. Физического удаления нет: Stripe не
// позволяет удалить продукт с привязанными ценами, продукт лишь перестает
// быть активным и выпадает из выдачи каталога.
func (s *CatalogService) ArchiveProduct(ctx context.Context, productID string) error {
	if _, err := s.stripe.ArchiveProduct(ctx, productID); err != nil {
		return err
	}

	if err := s.events.PublishProductArchived(ctx, productID); err != nil {
		s.log.Warnw("Failed to publish product.archived event", "productID", productID, "error", err)
	}

	s.log.Infow("Product archived", "productID", productID)
	return nil
}

// fallback возвращает копию статического каталога
func (s *CatalogService) fallback() []domain.Product {
	s.metrics.IncFallbackServed()
	products := make([]domain.Product, len(fallbackCatalog))
	copy(products, fallbackCatalog)
	return products
}
