package stripe

import (
	"errors"
	"net/http"

	"github.com/Dhoini/Storefront-gateway/internal/domain"
	"github.com/Dhoini/Storefront-gateway/pkg/logger"

	"github.com/stripe/stripe-go/v78"
)

// ToDomainProduct собирает доменную модель товара из продукта Stripe
// и его активной цены
func ToDomainProduct(product *stripe.Product, price *stripe.Price) domain.Product {
	return domain.Product{
		ID:      product.ID,
		Name:    product.Name,
		Price:   domain.ToMajorUnits(price.UnitAmount),
		PriceID: price.ID,
	}
}

// ToDomainOrder собирает доменную модель заказа из завершенной
// checkout-сессии и ее единственной позиции
func ToDomainOrder(session *stripe.CheckoutSession, item *stripe.LineItem) domain.Order {
	var email string
	if session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}

	return domain.Order{
		ID:            session.ID,
		ProductName:   item.Description,
		Amount:        domain.ToMajorUnits(session.AmountTotal),
		Timestamp:     session.Created,
		CustomerEmail: email,
	}
}

// translateError переводит ошибку SDK в доменную.
// Отсутствующий ресурс становится NotFoundError, остальные ошибки Stripe —
// UpstreamError с пользовательским сообщением платформы.
func translateError(op string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return domain.NewNotFoundError("resource", stripeErr.Param)
		}
		return domain.NewUpstreamError(op, stripeErr.Msg, stripeErr.HTTPStatusCode, err)
	}

	// Сетевые и прочие ошибки вне протокола Stripe
	return domain.NewUpstreamError(op, "", 0, err)
}

// logStripeError логирует ошибку Stripe с ее кодом и типом
func logStripeError(log *logger.Logger, op string, err error) {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		log.Errorw("Stripe API call failed",
			"op", op,
			"type", stripeErr.Type,
			"code", stripeErr.Code,
			"status", stripeErr.HTTPStatusCode,
			"message", stripeErr.Msg,
		)
		return
	}

	log.Errorw("Stripe API call failed", "op", op, "error", err)
}
