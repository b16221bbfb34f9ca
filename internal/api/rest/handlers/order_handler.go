package handlers

import (
	"net/http"

	"github.com/Dhoini/Storefront-gateway/internal/service"
	"github.com/Dhoini/Storefront-gateway/pkg/logger"
	"github.com/gin-gonic/gin"
)

// OrderHandler обработчик для заказов
type OrderHandler struct {
	orders *service.OrderService
	log    *logger.Logger
}

// NewOrderHandler создает новый обработчик заказов
func NewOrderHandler(orders *service.OrderService, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		log:    log,
	}
}

// GetOrders возвращает список завершенных заказов.
// Ответ — плоский JSON-массив, без обертки.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
