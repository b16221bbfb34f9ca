package rest

import (
	"time"

	"github.com/Dhoini/Storefront-gateway/config"
	"github.com/Dhoini/Storefront-gateway/internal/api/rest/handlers"
	"github.com/Dhoini/Storefront-gateway/internal/api/rest/middleware"
	"github.com/Dhoini/Storefront-gateway/internal/metrics"
	"github.com/Dhoini/Storefront-gateway/internal/service"
	"github.com/Dhoini/Storefront-gateway/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter настраивает маршрутизатор Gin с маршрутами и middleware
func SetupRouter(
	cfg *config.Config,
	catalog *service.CatalogService,
	orders *service.OrderService,
	checkout *service.CheckoutService,
	m metrics.GatewayMetrics,
	registry *prometheus.Registry,
	log *logger.Logger,
) *gin.Engine {
	r := gin.New()

	// Подключение middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.MetricsMiddleware(m))
	r.Use(gin.Recovery())

	// CORS только для разрешенных origin-ов фронтенда
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	// Endpoint для проверки работоспособности сервиса
	r.GET("/health", handlers.HealthCheck)

	// Prometheus метрики
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Инициализация обработчиков
	productHandler := handlers.NewProductHandler(catalog, log)
	orderHandler := handlers.NewOrderHandler(orders, log)
	checkoutHandler := handlers.NewCheckoutHandler(checkout, log)

	// Каталог товаров
	products := r.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.POST("", productHandler.CreateProduct)
		products.PUT("/:product_id", productHandler.UpdateProduct)
		products.DELETE("/:product_id", productHandler.DeleteProduct)
	}

	// Заказы и checkout
	r.GET("/orders", orderHandler.GetOrders)
	r.POST("/checkout", checkoutHandler.CreateCheckoutSession)

	return r
}
