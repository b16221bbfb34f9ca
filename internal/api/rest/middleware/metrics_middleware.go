package middleware

import (
	"time"

	"github.com/Dhoini/Storefront-gateway/internal/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware создает middleware для записи метрик HTTP запросов
func MetricsMiddleware(m metrics.GatewayMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		// FullPath возвращает шаблон маршрута (/products/:product_id),
		// а не конкретный URI, чтобы не раздувать кардинальность метрики
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.ObserveRequestDuration(
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(startTime).Seconds(),
		)
	}
}
