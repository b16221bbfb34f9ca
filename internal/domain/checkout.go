package domain

// CheckoutRequest представляет запрос на создание checkout-сессии
type CheckoutRequest struct {
	PriceID string `json:"price_id"`
}

// Validate проверяет входные данные запроса
func (r CheckoutRequest) Validate() error {
	if r.PriceID == "" {
		return &ValidationError{Field: "price_id", Message: "Price ID is required"}
	}
	return nil
}

// CheckoutResponse представляет ответ с URL платежной страницы Stripe
type CheckoutResponse struct {
	URL string `json:"url"`
}
