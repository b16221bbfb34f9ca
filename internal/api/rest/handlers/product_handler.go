package handlers

import (
	"net/http"

	"github.com/Dhoini/Storefront-gateway/internal/domain"
	"github.com/Dhoini/Storefront-gateway/internal/service"
	"github.com/Dhoini/Storefront-gateway/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ProductHandler обработчик для товаров
type ProductHandler struct {
	catalog *service.CatalogService
	log     *logger.Logger
}

// NewProductHandler создает новый обработчик товаров
func NewProductHandler(catalog *service.CatalogService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		log:     log,
	}
}

// GetProducts возвращает список товаров каталога.
// Единственный деградирующий маршрут: при недоступности Stripe отдается
// статический каталог со статусом 200, а не ошибка.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products := h.catalog.ListProducts(c.Request.Context())

	h.log.Info("Returned %d products", len(products))
	c.JSON(http.StatusOK, products)
}

// CreateProduct создает новый товар
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct обновляет товар по ID
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID := c.Param("product_id")

	var req domain.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), productID, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct удаляет товар по ID. Семантика мягкая: продукт архивируется
// в Stripe и пропадает из каталога, но остается читаемым по ID.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID := c.Param("product_id")

	if err := h.catalog.ArchiveProduct(c.Request.Context(), productID); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, domain.DeleteProductResponse{
		Success: true,
		Message: "Product deleted successfully",
	})
}
