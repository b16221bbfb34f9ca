package handlers

import (
	"net/http"

	"github.com/Dhoini/Storefront-gateway/internal/domain"
	"github.com/Dhoini/Storefront-gateway/internal/service"
	"github.com/Dhoini/Storefront-gateway/pkg/logger"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler обработчик для checkout-сессий
type CheckoutHandler struct {
	checkout *service.CheckoutService
	log      *logger.Logger
}

// NewCheckoutHandler создает новый обработчик checkout
func NewCheckoutHandler(checkout *service.CheckoutService, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		log:      log,
	}
}

// CreateCheckoutSession создает платежную сессию и возвращает URL
// hosted-страницы Stripe, на которую фронтенд перенаправит покупателя
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var req domain.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.checkout.CreateSession(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
