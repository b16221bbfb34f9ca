package domain

// Product представляет собой товар витрины.
// Stripe является источником истины: товар собирается из пары
// "продукт + его единственная активная цена" и нигде не сохраняется.
type Product struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	PriceID string  `json:"price_id"`
}

// CreateProductRequest представляет запрос на создание товара
type CreateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Validate проверяет входные данные запроса
func (r CreateProductRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "Name is required"}
	}
	if r.Price <= 0 {
		return &ValidationError{Field: "price", Message: "Price is required and must be positive"}
	}
	return nil
}

// UpdateProductRequest представляет запрос на обновление товара.
// PriceID указывает на текущую активную цену, которую клиент знает
// из предыдущего чтения каталога.
type UpdateProductRequest struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	PriceID string  `json:"price_id"`
}

// Validate проверяет входные данные запроса
func (r UpdateProductRequest) Validate() error {
	if r.Name == "" || r.Price <= 0 {
		return &ValidationError{Field: "name,price", Message: "Name and price are required"}
	}
	if r.PriceID == "" {
		return &ValidationError{Field: "price_id", Message: "Price ID is required"}
	}
	return nil
}

// DeleteProductResponse представляет ответ на удаление товара.
// Удаление всегда мягкое: Stripe не позволяет физически удалить продукт
// с привязанными ценами, поэтому продукт архивируется (active=false).
type DeleteProductResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
