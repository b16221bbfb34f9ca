package domain

// Order представляет собой завершенный заказ.
// Заказ строится из завершенной checkout-сессии Stripe и ее единственной
// позиции; собственного жизненного цикла у заказа нет, он только читается.
type Order struct {
	ID            string  `json:"id"`
	ProductName   string  `json:"product_name"`
	Amount        float64 `json:"amount"`
	Timestamp     int64   `json:"timestamp"`
	CustomerEmail string  `json:"customer_email"`
}
